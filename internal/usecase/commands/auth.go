package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Harishsingh-01/roomeaseserver/internal/domain/user"
	"github.com/Harishsingh-01/roomeaseserver/internal/infra"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/errs"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/jwt"
	"github.com/Harishsingh-01/roomeaseserver/internal/pkg/password"
	"github.com/Harishsingh-01/roomeaseserver/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrInvalidOTP         = errs.New("invalid or expired verification code")
	ErrEmailTaken         = errs.New("email already registered")
	ErrOTPDelivery        = errs.New("failed to deliver verification code")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Code     string
}

type LoginResult struct {
	UserID uuid.UUID
	Role   string
	Token  string
}

type AuthCommands interface {
	SendOTP(ctx context.Context, email string) error
	Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	otpStore   OTPStore
	mailer     Mailer
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, otpStore OTPStore, mailer Mailer, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		otpStore:   otpStore,
		mailer:     mailer,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) SendOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	code, err := generateOTPCode()
	if err != nil {
		return errs.Mark(err, ErrOTPDelivery)
	}

	if err := a.otpStore.Save(ctx, email, code); err != nil {
		return errs.Mark(err, ErrOTPDelivery)
	}

	body := fmt.Sprintf("<p>Your verification code is <b>%s</b>. It expires in 5 minutes.</p>", code)
	if err := a.mailer.Send(ctx, email, "Your verification code", body); err != nil {
		return errs.Mark(err, ErrOTPDelivery)
	}

	return nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ok, err := a.otpStore.Verify(ctx, email, req.Code)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, ErrInvalidOTP
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return uuid.Nil, err
	}

	newUser, err := user.NewUser(req.Name, email, hash)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Users().Create(ctx, tx.DB(), newUser)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return txErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("user registered", "user_id", createdID)
	return createdID, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(snap.PasswordHash, plainPassword) {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(snap.ID, user.Role(snap.Role))
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{UserID: snap.ID, Role: snap.Role, Token: token}, nil
}

// generateOTPCode draws six digits from crypto/rand.
func generateOTPCode() (string, error) {
	const digits = "0123456789"
	var buf [6]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = digits[int(buf[i])%len(digits)]
	}
	return string(buf[:]), nil
}
