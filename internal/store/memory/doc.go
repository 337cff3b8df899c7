// Package memory implementa los repositorios de dominio sobre maps en
// memoria protegidos con sync.RWMutex.
//
// Garantías:
//   - Cada operación individual (Save, FindByID, DeleteByID) es atómica.
//   - El índice email→id de usuarios se actualiza junto con el map primario,
//     bajo el mismo lock: nunca hay una ventana donde uno refleje un write
//     y el otro no.
//   - Las operaciones compuestas (DeleteByOwnerID, DeleteByProductID) NO son
//     atómicas como un todo: recolectan los IDs y los borran de a uno, igual
//     que el backend de documentos. Un insert concurrente durante el cascade
//     puede no ser visto. Es una limitación documentada del contrato; la
//     capa de services decide si es aceptable por operación.
//
// El estado vive en el objeto store construido al inicio del proceso y se
// inyecta explícitamente a los services: no hay singletons ambientales.
package memory
