package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
	"github.com/dropDatabas3/webshop/internal/observability/logger"
)

// Resultados de negocio de autenticación y cuentas.
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// PasswordHasher hashea y verifica contraseñas. El core no conoce el
// algoritmo; ver internal/security/password.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer emite el bearer token opaco de sesión.
type TokenIssuer interface {
	IssueToken(userID, email string) (string, error)
}

// AuthResult es el resultado de un registro o login exitoso.
type AuthResult struct {
	User  *repository.User
	Token string
}

// RegisterInput son los datos de registro de una cuenta.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// AuthDeps contiene las dependencias del AuthService.
type AuthDeps struct {
	Users     repository.UserRepository
	Products  repository.ProductRepository
	Favorites repository.FavoriteRepository
	Hasher    PasswordHasher
	Issuer    TokenIssuer
	ID        IDFunc
	Now       NowFunc
}

// AuthService registra, autentica y borra cuentas.
type AuthService struct {
	users     repository.UserRepository
	products  repository.ProductRepository
	favorites repository.FavoriteRepository
	hasher    PasswordHasher
	issuer    TokenIssuer
	id        IDFunc
	now       NowFunc
}

// NewAuthService crea un AuthService.
func NewAuthService(deps AuthDeps) *AuthService {
	return &AuthService{
		users:     deps.Users,
		products:  deps.Products,
		favorites: deps.Favorites,
		hasher:    deps.Hasher,
		issuer:    deps.Issuer,
		id:        defaultID(deps.ID),
		now:       defaultNow(deps.Now),
	}
}

// Register normaliza el email a minúsculas, chequea unicidad, hashea la
// contraseña, recorta los nombres y trata teléfonos en blanco como ausentes.
// El chequeo de unicidad es lookup-before-insert: dos registros concurrentes
// del mismo email pueden colarse (race documentado del contrato).
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("auth"), logger.Op("Register"))

	email := strings.ToLower(strings.TrimSpace(in.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &repository.User{
		ID:           s.id(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		CreatedAt:    s.now(),
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.IssueToken(saved.ID, saved.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	log.Info("user registered", logger.UserID(saved.ID))
	return &AuthResult{User: saved, Token: token}, nil
}

// Login retorna ErrInvalidCredentials de forma uniforme, sea que el email no
// exista o que la contraseña no coincida: la respuesta no distingue los dos
// casos.
func (s *AuthService) Login(ctx context.Context, email, passwordPlain string) (*AuthResult, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("auth"), logger.Op("Login"))

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if repository.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(passwordPlain, user.PasswordHash) {
		log.Debug("password check failed", logger.UserID(user.ID))
		return nil, ErrInvalidCredentials
	}

	token, err := s.issuer.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	log.Info("user logged in", logger.UserID(user.ID))
	return &AuthResult{User: user, Token: token}, nil
}

// FindUserByID retorna ErrUserNotFound si no existe.
func (s *AuthService) FindUserByID(ctx context.Context, userID string) (*repository.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if repository.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// DeleteUser ejecuta el cascade de borrado de cuenta: favoritos que
// referencian los productos del usuario, luego sus productos, luego el
// usuario. Son pasos secuenciales sin transacción: un fallo a mitad deja el
// cascade parcialmente aplicado (ej: favoritos huérfanos). Limitación
// conocida; no hay rollback ni retry en el core.
func (s *AuthService) DeleteUser(ctx context.Context, userID string) error {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("auth"), logger.Op("DeleteUser"), logger.UserID(userID))

	_, err := s.users.FindByID(ctx, userID)
	if repository.IsNotFound(err) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	products, err := s.products.FindByOwnerID(ctx, userID)
	if err != nil {
		return err
	}
	removedFavorites := 0
	for _, p := range products {
		n, err := s.favorites.DeleteByProductID(ctx, p.ID)
		if err != nil {
			return err
		}
		removedFavorites += n
	}

	removedProducts, err := s.products.DeleteByOwnerID(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := s.users.DeleteByID(ctx, userID); err != nil {
		return err
	}

	log.Info("user deleted",
		logger.Count(removedProducts),
		logger.Int("favorites_removed", removedFavorites),
	)
	return nil
}
