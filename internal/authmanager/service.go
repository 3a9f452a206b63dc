// Package authmanager manages credential verification, session issuance and
// authorization rules.
package authmanager

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cashops/cash-bank/internal/domain"
	"github.com/cashops/cash-bank/internal/sessionstore"
	"github.com/cashops/cash-bank/pkg/errorspkg"
	"github.com/cashops/cash-bank/pkg/passpkg"
	"github.com/cashops/cash-bank/pkg/tokenpkg"
)

// Repo provides data access layer interface needed by the auth service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package authmanager
type Repo interface {
	GetUserByName(ctx context.Context, name string) (domain.User, error)
	GetPasswordForUser(ctx context.Context, userID int32) (string, error)
	GetAccount(ctx context.Context, id int32) (*domain.Account, error)
}

// Service facilitates authentication and authorization logic.
type Service struct {
	repo          Repo
	sessions      *sessionstore.Store
	tokenMaker    tokenpkg.Maker
	tokenDuration time.Duration
}

// New returns an auth Service. All collaborators are required.
func New(repo Repo, sessions *sessionstore.Store, tokenMaker tokenpkg.Maker, tokenDuration time.Duration) (*Service, error) {
	if repo == nil || sessions == nil || tokenMaker == nil {
		return nil, domain.ErrConfiguration
	}

	return &Service{
		repo:          repo,
		sessions:      sessions,
		tokenMaker:    tokenMaker,
		tokenDuration: tokenDuration,
	}, nil
}

// CanInvokeOperation reports whether the user may invoke the given
// operation. A missing role or a missing rule for the operation kind is a
// configuration error, never a silent denial.
//
// Ownership is always verified against the account looked up by ID, not
// against the identity embedded in the operation record.
func (s *Service) CanInvokeOperation(ctx context.Context, op domain.Operation, user domain.User) error {
	l := zerolog.Ctx(ctx)

	if user.Role.Name == "" {
		l.Error().Str("username", user.Name).Msg("user has no role configured")
		return domain.ErrConfiguration
	}

	switch op.Kind {
	case domain.OpDeposit:
		// The system principal credits interest through deposits.
		if user.Role.Is(domain.RoleSystem) {
			return nil
		}

		return s.ownerOrAdmin(ctx, op, user)
	case domain.OpWithdrawal, domain.OpTransferOut:
		return s.ownerOrAdmin(ctx, op, user)
	case domain.OpTransferIn:
		// The credit leg is authorized together with the debit leg.
		return nil
	case domain.OpLogIn, domain.OpLogOut:
		// Self-service.
		return nil
	case domain.OpInterest:
		if user.Role.Is(domain.RoleAdmin) || user.Role.Is(domain.RoleSystem) {
			return nil
		}

		return domain.ErrNotAuthorized
	default:
		l.Error().Str("kind", string(op.Kind)).Msg("no authorization rule for operation kind")
		return domain.ErrConfiguration
	}
}

func (s *Service) ownerOrAdmin(ctx context.Context, op domain.Operation, user domain.User) error {
	if user.Role.Is(domain.RoleAdmin) {
		return nil
	}

	if op.AccountID == nil {
		return domain.ErrNotAuthorized
	}

	account, err := s.repo.GetAccount(ctx, *op.AccountID)
	if err != nil {
		return err
	}

	if account.Owner.ID == user.ID {
		return nil
	}

	return domain.ErrNotAuthorized
}

// LogIn verifies the credentials and issues a new session with its access
// token. Unknown user and wrong password both surface as
// domain.ErrAuthentication; the cause is logged internally only. The
// caller-supplied password buffer is wiped on every return path.
func (s *Service) LogIn(ctx context.Context, username string, password []byte) (string, domain.Session, error) {
	l := zerolog.Ctx(ctx)

	defer passpkg.Clear(password)

	if username == "" || len(password) == 0 {
		l.Info().Msg("login rejected: empty username or password")
		return "", domain.Session{}, domain.ErrAuthentication
	}

	user, err := s.repo.GetUserByName(ctx, username)
	if err != nil {
		l.Info().Err(err).Str("username", username).Msg("login failed")
		return "", domain.Session{}, domain.ErrAuthentication
	}

	hash, err := s.repo.GetPasswordForUser(ctx, user.ID)
	if err != nil {
		l.Error().Err(err).Str("username", username).Msg("login failed")
		return "", domain.Session{}, domain.ErrAuthentication
	}

	if err := passpkg.Check(string(password), hash); err != nil {
		l.Info().Err(err).Str("username", username).Msg("login failed")
		return "", domain.Session{}, domain.ErrAuthentication
	}

	session := s.sessions.Create(user.Name)

	token, _, err := s.tokenMaker.CreateToken(user.Name, s.tokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		s.sessions.Delete(session.ID)

		return "", domain.Session{}, errorspkg.ErrInternal
	}

	return token, session, nil
}

// LogOut invalidates every session of the user and reports whether any
// session existed.
func (s *Service) LogOut(ctx context.Context, username string) bool {
	deleted := s.sessions.DeleteByUser(username)

	zerolog.Ctx(ctx).Info().Str("username", username).Int("sessions", deleted).Msg("logged out")

	return deleted > 0
}
