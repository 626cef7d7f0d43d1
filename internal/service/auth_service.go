package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"triponic-be/internal/dto"
	"triponic-be/internal/entity"
	"triponic-be/internal/pkg/mailer"
	"triponic-be/internal/repository/specification"
	"triponic-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func generateToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.Id.String(),
		"agency_id": user.AgencyId.String(),
		"role":      string(user.Role),
		"exp":       time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// Register provisions a new agency with its first admin user in one
// transaction.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	agency := &entity.Agency{
		Name:         req.AgencyName,
		ContactEmail: req.Email,
	}
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AgencyRepository().Create(ctx, agency); err != nil {
		return nil, err
	}

	user := &entity.User{
		AgencyId:     agency.Id,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         entity.UserRoleAdmin,
		Status:       entity.UserStatusActive,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	token, err := generateToken(user)
	if err != nil {
		return nil, err
	}

	go func() {
		if emailErr := s.emailService.SendWelcome(user.Email, agency.Name); emailErr != nil {
			fmt.Printf("Error sending welcome email: %v\n", emailErr)
		}
	}()

	return &dto.RegisterResponse{
		Token:  token,
		User:   toUserResponse(user),
		Agency: dto.AgencyBrief{Id: agency.Id, Name: agency.Name},
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("invalid credentials")
	}
	if user.Status != entity.UserStatusActive {
		return nil, errors.New("account is inactive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	agency, err := uow.AgencyRepository().FindOne(ctx, specification.ByID{ID: user.AgencyId})
	if err != nil {
		return nil, err
	}
	if agency == nil {
		return nil, errors.New("agency not found")
	}

	token, err := generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:  token,
		User:   toUserResponse(user),
		Agency: dto.AgencyBrief{Id: agency.Id, Name: agency.Name},
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	res := toUserResponse(user)
	return &res, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:       user.Id,
		AgencyId: user.AgencyId,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     string(user.Role),
		Status:   string(user.Status),
	}
}
