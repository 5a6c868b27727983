package userservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dialloibra/microcredit/internal/authz"
	"github.com/dialloibra/microcredit/internal/domain"
	"github.com/dialloibra/microcredit/pkg/auth"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int) error
	FindAll(ctx context.Context) ([]domain.User, error)
	FindRecent(ctx context.Context, limit int) ([]domain.User, error)
	CountByRole(ctx context.Context) (map[domain.Role]int, error)
}

type CreditRepo interface {
	ExistsByUserID(ctx context.Context, userID int) (bool, error)
}

type Service struct {
	repo        Repo
	creditRepo  CreditRepo
	hashService auth.HashServiceInterface
}

func New(repo Repo, creditRepo CreditRepo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		repo:        repo,
		creditRepo:  creditRepo,
		hashService: hashService,
	}
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("a user with this email already exists")
	ErrInvalidRole  = errors.New("unknown role")
	ErrSelfDelete   = errors.New("you cannot delete your own account")
	ErrHasCredits   = errors.New("user owns credits and cannot be deleted")
)

func (s *Service) List(ctx context.Context, actor *domain.Principal) ([]domain.User, error) {
	if err := authz.Authorize(actor, authz.CapUserManage, 0); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

type CreateInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

func (s *Service) Create(ctx context.Context, actor *domain.Principal, in CreateInput) (*domain.User, error) {
	if err := authz.Authorize(actor, authz.CapUserManage, 0); err != nil {
		return nil, err
	}
	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}
	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}
	hashed, err := s.hashService.HashPassword(in.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hashed,
		Role:         in.Role,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("user created", zap.Int("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

type UpdateInput struct {
	Name     string
	Email    string
	Password string // optional, empty keeps the current hash
	Role     domain.Role
}

func (s *Service) Update(ctx context.Context, actor *domain.Principal, userID int, in UpdateInput) (*domain.User, error) {
	if err := authz.Authorize(actor, authz.CapUserManage, 0); err != nil {
		return nil, err
	}
	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if in.Email != user.Email {
		other, err := s.repo.FindByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != userID {
			return nil, ErrEmailTaken
		}
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Role = in.Role
	if in.Password != "" {
		hashed, err := s.hashService.HashPassword(in.Password)
		if err != nil {
			zap.L().Error("can't hash password: ", zap.Error(err))
			return nil, err
		}
		user.PasswordHash = hashed
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	zap.L().Info("user updated", zap.Int("user_id", userID))
	return updated, nil
}

// Delete removes an account. Blocked for the actor's own account and for any
// user still owning credits, so credit history is never orphaned.
func (s *Service) Delete(ctx context.Context, actor *domain.Principal, userID int) error {
	if err := authz.Authorize(actor, authz.CapUserManage, 0); err != nil {
		return err
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if userID == actor.ID {
		return ErrSelfDelete
	}
	owns, err := s.creditRepo.ExistsByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if owns {
		return ErrHasCredits
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	zap.L().Info("user deleted", zap.Int("user_id", userID), zap.Int("actor", actor.ID))
	return nil
}
