// Package repository define las entidades del marketplace y las interfaces
// de repositorio de dominio.
//
// Estas interfaces representan contratos de persistencia, independientes del
// almacenamiento subyacente (memoria o MongoDB).
//
// Las implementaciones concretas viven en internal/store/.
//
// Arquitectura:
//
//	┌─────────────────────────────────────────────────────┐
//	│           Services / Controllers                    │
//	└─────────────────────────────────────────────────────┘
//	                        │
//	                        ▼
//	┌─────────────────────────────────────────────────────┐
//	│        domain/repository (interfaces)               │
//	│  ProductRepository, UserRepository, OrderRepository │
//	│  FavoriteRepository                                 │
//	└─────────────────────────────────────────────────────┘
//	                        │
//	              ┌─────────┴─────────┐
//	              ▼                   ▼
//	       ┌─────────────┐     ┌─────────────┐
//	       │   store/    │     │   store/    │
//	       │   memory    │     │    mongo    │
//	       └─────────────┘     └─────────────┘
//
// Convenciones:
//   - Context siempre es el primer parámetro.
//   - Save es un upsert por ID, last-write-wins; retorna la entidad guardada.
//   - Los Find* retornan ErrNotFound cuando la entidad no existe.
//   - Los Delete* son idempotentes: borrar un ID inexistente retorna
//     (false, nil) o cuenta 0, nunca un error.
//   - Errores de storage (red, backend caído) se propagan envueltos; el
//     dominio no los reintenta.
package repository
