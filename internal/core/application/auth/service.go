package auth

import (
	"context"
	"errors"

	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/ports"
	"watertanker/internal/pkg/errs"
)

// ErrTokenRevoked is returned for tokens that were valid but have been
// revoked by logout.
var ErrTokenRevoked = errors.New("token has been revoked")

// Service ties credential verification, token issuance, and revocation
// together. Login paths differ per account kind: customers and admins log
// in with email, drivers with their contact number.
type Service struct {
	tokens     *TokenService
	uowFactory ports.UnitOfWorkFactory
}

// NewService creates the authentication service.
func NewService(tokens *TokenService, uowFactory ports.UnitOfWorkFactory) *Service {
	return &Service{
		tokens:     tokens,
		uowFactory: uowFactory,
	}
}

// LoginCustomer verifies a customer's email and password and issues tokens.
func (s *Service) LoginCustomer(ctx context.Context, email, password string) (TokenPair, error) {
	var id kernel.UUID
	var hash string

	err := s.withUoW(ctx, func(uow ports.UnitOfWork) error {
		customer, err := uow.CustomerRepository().GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		id, hash = customer.ID(), customer.PasswordHash()
		return nil
	})
	if err != nil {
		return TokenPair{}, maskNotFound(err)
	}

	if err = VerifyPassword(hash, password); err != nil {
		return TokenPair{}, err
	}

	return s.tokens.IssuePair(id, account.KindCustomer)
}

// LoginDriver verifies a driver's contact number and password and issues tokens.
func (s *Service) LoginDriver(ctx context.Context, contactNumber, password string) (TokenPair, error) {
	var id kernel.UUID
	var hash string

	err := s.withUoW(ctx, func(uow ports.UnitOfWork) error {
		driver, err := uow.DriverRepository().GetByContactNumber(ctx, contactNumber)
		if err != nil {
			return err
		}
		id, hash = driver.ID(), driver.PasswordHash()
		return nil
	})
	if err != nil {
		return TokenPair{}, maskNotFound(err)
	}

	if err = VerifyPassword(hash, password); err != nil {
		return TokenPair{}, err
	}

	return s.tokens.IssuePair(id, account.KindDriver)
}

// LoginAdmin verifies an admin email and password and issues tokens.
// Superadmins are checked first, then staff.
func (s *Service) LoginAdmin(ctx context.Context, email, password string) (TokenPair, error) {
	var id kernel.UUID
	var hash string
	kind := account.KindStaff

	err := s.withUoW(ctx, func(uow ports.UnitOfWork) error {
		repo := uow.StaffRepository()
		if super, err := repo.GetSuperAdminByEmail(ctx, email); err == nil {
			id, hash, kind = super.ID(), super.PasswordHash(), account.KindSuperAdmin
			return nil
		} else if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		staff, err := repo.GetStaffByEmail(ctx, email)
		if err != nil {
			return err
		}
		id, hash = staff.ID(), staff.PasswordHash()
		return nil
	})
	if err != nil {
		return TokenPair{}, maskNotFound(err)
	}

	if err = VerifyPassword(hash, password); err != nil {
		return TokenPair{}, err
	}

	return s.tokens.IssuePair(id, kind)
}

// Authenticate validates an access token, rejects revoked ones, and
// resolves the subject to a stored account. A token whose account was
// deleted after issuance is invalid.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*Claims, error) {
	claims, err := s.tokens.VerifyAccess(accessToken)
	if err != nil {
		return nil, err
	}

	if err = s.verifyClaims(ctx, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// Logout revokes the presented token. The entry expires together with the
// token itself, so the eviction job can drop it later.
func (s *Service) Logout(ctx context.Context, claims *Claims) error {
	return s.withUoW(ctx, func(uow ports.UnitOfWork) error {
		return uow.TokenDenylist().Add(ctx, ports.DeniedToken{
			JTI:       claims.ID,
			ExpiresAt: claims.ExpiresAt.Time,
		})
	})
}

// Refresh validates a refresh token, revokes it, and issues a fresh pair.
// A refresh token is single use.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}

	if err = s.verifyClaims(ctx, claims); err != nil {
		return TokenPair{}, err
	}

	id, err := claims.AccountID()
	if err != nil {
		return TokenPair{}, ErrTokenInvalid
	}
	kind, err := claims.AccountKind()
	if err != nil {
		return TokenPair{}, ErrTokenInvalid
	}

	if err = s.Logout(ctx, claims); err != nil {
		return TokenPair{}, err
	}

	return s.tokens.IssuePair(id, kind)
}

// verifyClaims checks the denylist and resolves the token subject to a
// stored account within a single unit of work.
func (s *Service) verifyClaims(ctx context.Context, claims *Claims) error {
	return s.withUoW(ctx, func(uow ports.UnitOfWork) error {
		revoked, err := uow.TokenDenylist().Contains(ctx, claims.ID)
		if err != nil {
			return err
		}
		if revoked {
			return ErrTokenRevoked
		}
		return resolveAccount(ctx, uow, claims)
	})
}

// resolveAccount looks up the account the claims refer to. A missing
// record, a malformed subject, or an unknown kind all invalidate the token.
func resolveAccount(ctx context.Context, uow ports.UnitOfWork, claims *Claims) error {
	id, err := claims.AccountID()
	if err != nil {
		return ErrTokenInvalid
	}
	kind, err := claims.AccountKind()
	if err != nil {
		return ErrTokenInvalid
	}

	switch kind {
	case account.KindCustomer:
		_, err = uow.CustomerRepository().Get(ctx, id)
	case account.KindDriver:
		_, err = uow.DriverRepository().Get(ctx, id)
	case account.KindStaff:
		_, err = uow.StaffRepository().GetStaff(ctx, id)
	case account.KindSuperAdmin:
		_, err = uow.StaffRepository().GetSuperAdmin(ctx, id)
	default:
		return ErrTokenInvalid
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrTokenInvalid
	}
	return err
}

func (s *Service) withUoW(ctx context.Context, fn func(uow ports.UnitOfWork) error) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// maskNotFound hides whether the account exists behind a generic
// credential failure.
func maskNotFound(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrInvalidCredentials
	}
	return err
}
