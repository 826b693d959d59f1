package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/userweb/engine/internal/models"
	"github.com/userweb/engine/internal/repository"
	appErr "github.com/userweb/engine/pkg/errors"
	"github.com/userweb/engine/pkg/logger"
)

// UserService applies the lookup, creation and partial-update rules for user records.
// Every returned error is an *errors.AppError coded invalid, conflict, not_found or internal.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*models.User, error)
	UpdateUserByEmail(ctx context.Context, input *UpdateUserInput) (*models.User, error)
}

const msgEmailRequired = "Please enter at least email Id."

type CreateUserInput struct {
	FirstName     *string
	LastName      *string
	Email         *string `validate:"required"`
	Address       *string
	ContactNumber *int64
}

// UpdateUserInput carries a partial update; unset fields are left unchanged.
type UpdateUserInput struct {
	FirstName     models.Optional[string]
	LastName      models.Optional[string]
	Email         models.Optional[string]
	Address       models.Optional[string]
	ContactNumber models.Optional[int64]
}

type userService struct {
	userRepo repository.UserRepository
	validate *validator.Validate
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Ensure interfaces are satisfied at compile time
var _ UserService = (*userService)(nil)

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	logger.L().Info("list users")
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, storageFailure("list users", err)
	}
	return users, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	logger.L().Info("get user by email", zap.String("email", email))
	var u models.User
	if err := s.userRepo.GetByEmail(ctx, email, &u); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.Newf(appErr.CodeNotFound, "User with email '%s' not found.", email)
		}
		return nil, storageFailure("get user by email", err)
	}
	return &u, nil
}

// CreateUser inserts a new user after checking that no user holds the email.
// The check and the insert are separate statements, so two concurrent creates
// with the same email can both succeed.
func (s *userService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.User, error) {
	logger.L().Info("create user")
	if input == nil || s.validate.Struct(input) != nil {
		return nil, appErr.New(appErr.CodeInvalid, msgEmailRequired).WithMeta("field", "email")
	}
	email := *input.Email

	var existing models.User
	err := s.userRepo.GetByEmail(ctx, email, &existing)
	switch {
	case err == nil:
		return nil, appErr.Newf(appErr.CodeConflict, "User with email '%s' already exists.", email)
	case !appErr.IsCode(err, appErr.CodeNotFound):
		return nil, storageFailure("create user", err)
	}

	u := &models.User{
		ID:            uuid.New(),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         email,
		Address:       input.Address,
		ContactNumber: input.ContactNumber,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, storageFailure("create user", err)
	}

	logger.L().Info("user created", zap.String("user_id", u.ID.String()), zap.String("email", email))
	return u, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*models.User, error) {
	logger.L().Info("update user", zap.String("user_id", id.String()))
	var u models.User
	if err := s.userRepo.GetByID(ctx, id, &u); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "user not found")
		}
		return nil, storageFailure("update user", err)
	}

	// email is mutable here and is not re-checked for uniqueness
	if input != nil {
		applyProfile(&u, input)
		input.Email.Assign(&u.Email)
	}

	if err := s.userRepo.Update(ctx, &u); err != nil {
		return nil, storageFailure("update user", err)
	}

	logger.L().Info("user updated", zap.String("user_id", u.ID.String()))
	return &u, nil
}

// UpdateUserByEmail updates the user identified by input.Email. The email itself
// is never changed by this operation.
func (s *userService) UpdateUserByEmail(ctx context.Context, input *UpdateUserInput) (*models.User, error) {
	var email string
	var ok bool
	if input != nil {
		email, ok = input.Email.Get()
	}
	logger.L().Info("update user by email", zap.String("email", email))

	if !ok {
		return nil, notFoundByEmail(email)
	}

	var u models.User
	if err := s.userRepo.GetByEmail(ctx, email, &u); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, notFoundByEmail(email)
		}
		return nil, storageFailure("update user by email", err)
	}

	applyProfile(&u, input)

	if err := s.userRepo.Update(ctx, &u); err != nil {
		return nil, storageFailure("update user by email", err)
	}

	logger.L().Info("user updated", zap.String("user_id", u.ID.String()), zap.String("email", email))
	return &u, nil
}

func applyProfile(u *models.User, input *UpdateUserInput) {
	input.Address.AssignPtr(&u.Address)
	input.ContactNumber.AssignPtr(&u.ContactNumber)
	input.FirstName.AssignPtr(&u.FirstName)
	input.LastName.AssignPtr(&u.LastName)
}

func notFoundByEmail(email string) error {
	return appErr.Newf(appErr.CodeNotFound, "User with email '%s' not found.", email)
}

// storageFailure logs an unexpected repository error and returns it coded internal.
func storageFailure(op string, err error) error {
	logger.L().Error("storage failure", zap.String("operation", op), zap.Error(err))
	if appErr.IsCode(err, appErr.CodeInternal) {
		return err
	}
	return appErr.Wrap(err, appErr.CodeInternal, op+" failed")
}
