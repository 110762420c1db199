package service

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/santiagoprado21/southpark-reservas/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs an access token for a staff account.
type TokenIssuer interface {
	Issue(u *domain.User) (string, error)
}

type UserService struct {
	repo   ports.UserRepo
	tokens TokenIssuer
}

func NewUserService(repo ports.UserRepo, tokens TokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Login verifies staff credentials and returns the account with a signed
// token. Deactivated accounts cannot log in.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// not-found collapses into invalid credentials on purpose
		return nil, "", domain.ErrInvalidCredentials
	}

	if !user.Activo {
		return nil, "", domain.ErrUserInactive
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrValidation)
	}
	if len(input.Password) < 6 {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos 6 caracteres", domain.ErrValidation)
	}
	if len(input.Nombre) < 2 {
		return nil, fmt.Errorf("%w: el nombre debe tener al menos 2 caracteres", domain.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleEmpleado
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: rol inválido %q", domain.ErrValidation, input.Role)
	}

	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Nombre:       input.Nombre,
		Role:         role,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, f domain.UserFilter) ([]*domain.User, error) {
	return s.repo.List(ctx, f)
}

func (s *UserService) Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Nombre != nil {
		if len(*input.Nombre) < 2 {
			return nil, fmt.Errorf("%w: el nombre debe tener al menos 2 caracteres", domain.ErrValidation)
		}
		user.Nombre = *input.Nombre
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, fmt.Errorf("%w: rol inválido %q", domain.ErrValidation, *input.Role)
		}
		user.Role = *input.Role
	}
	if input.Password != nil {
		if len(*input.Password) < 6 {
			return nil, fmt.Errorf("%w: la contraseña debe tener al menos 6 caracteres", domain.ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if input.Activo != nil {
		user.Activo = *input.Activo
	}
	user.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

func (s *UserService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
