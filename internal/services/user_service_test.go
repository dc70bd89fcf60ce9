package services

import (
	"context"
	errs "errors"
	"testing"

	"github.com/rafabene/cuidar-backend/internal/domain/errors"
	"github.com/rafabene/cuidar-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/cuidar-backend/internal/testutil"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewUserService(
		postgres.NewUserRepository(db),
		postgres.NewUnitOfWork(db),
		testutil.NewTestLogger(),
	)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	input := RegisterInput{
		Name:     "Ana",
		Email:    "Ana@X.com",
		Password: "12345678",
		Phone:    "11999990000",
	}
	if err := svc.Register(ctx, input); err != nil {
		t.Fatalf("erro inesperado no cadastro: %v", err)
	}

	t.Run("login com email normalizado", func(t *testing.T) {
		user, err := svc.Login(ctx, "ana@x.com", "12345678")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if user.Name == nil || *user.Name != "Ana" {
			t.Errorf("nome = %v, esperava Ana", user.Name)
		}
	})

	t.Run("login com maiúsculas e espaços", func(t *testing.T) {
		if _, err := svc.Login(ctx, "  ANA@X.COM  ", "12345678"); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
	})

	t.Run("senha incorreta", func(t *testing.T) {
		_, err := svc.Login(ctx, "ana@x.com", "errada")
		if !errs.Is(err, errors.ErrInvalidCredentials) {
			t.Errorf("erro = %v, esperava ErrInvalidCredentials", err)
		}
	})

	t.Run("email duplicado", func(t *testing.T) {
		err := svc.Register(ctx, input)
		if !errs.Is(err, errors.ErrEmailAlreadyExists) {
			t.Errorf("erro = %v, esperava ErrEmailAlreadyExists", err)
		}
	})
}

func TestGetProfile(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.GetProfile(ctx, "nao@existe.com")
	if !errs.Is(err, errors.ErrUserNotFound) {
		t.Errorf("erro = %v, esperava ErrUserNotFound", err)
	}

	if err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@x.com", Password: "12345678", Phone: "1"}); err != nil {
		t.Fatalf("erro inesperado no cadastro: %v", err)
	}

	user, err := svc.GetProfile(ctx, "ANA@X.COM")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if user.Email.String() != "ana@x.com" {
		t.Errorf("email = %q, esperava ana@x.com", user.Email.String())
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@x.com", Password: "12345678", Phone: "1"}); err != nil {
		t.Fatalf("erro inesperado no cadastro: %v", err)
	}

	if err := svc.UpdateProfile(ctx, "ana@x.com", "Ana Maria", "11988887777"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	user, err := svc.GetProfile(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if user.Name == nil || *user.Name != "Ana Maria" {
		t.Errorf("nome = %v, esperava Ana Maria", user.Name)
	}
	if user.Phone == nil || *user.Phone != "11988887777" {
		t.Errorf("telefone = %v, esperava 11988887777", user.Phone)
	}

	// atualizar usuário inexistente é sucesso silencioso
	if err := svc.UpdateProfile(ctx, "nao@existe.com", "X", "Y"); err != nil {
		t.Errorf("erro inesperado: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@x.com", Password: "12345678", Phone: "1"}); err != nil {
		t.Fatalf("erro inesperado no cadastro: %v", err)
	}

	t.Run("senha curta é rejeitada", func(t *testing.T) {
		err := svc.ChangePassword(ctx, "ana@x.com", "1234567")
		if !errs.Is(err, errors.ErrPasswordTooShort) {
			t.Errorf("erro = %v, esperava ErrPasswordTooShort", err)
		}
	})

	t.Run("senha vazia é rejeitada", func(t *testing.T) {
		err := svc.ChangePassword(ctx, "ana@x.com", "")
		if !errs.Is(err, errors.ErrPasswordTooShort) {
			t.Errorf("erro = %v, esperava ErrPasswordTooShort", err)
		}
	})

	t.Run("senha válida é trocada", func(t *testing.T) {
		if err := svc.ChangePassword(ctx, "ana@x.com", "novasenha"); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if _, err := svc.Login(ctx, "ana@x.com", "novasenha"); err != nil {
			t.Errorf("login com a nova senha falhou: %v", err)
		}
		if _, err := svc.Login(ctx, "ana@x.com", "12345678"); !errs.Is(err, errors.ErrInvalidCredentials) {
			t.Errorf("login com a senha antiga deveria falhar, erro = %v", err)
		}
	})
}

func TestDeleteAccount(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@x.com", Password: "12345678", Phone: "1"}); err != nil {
		t.Fatalf("erro inesperado no cadastro: %v", err)
	}

	if err := svc.DeleteAccount(ctx, "ANA@X.COM"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := svc.DeleteAccount(ctx, "ana@x.com"); !errs.Is(err, errors.ErrUserNotFound) {
		t.Errorf("erro = %v, esperava ErrUserNotFound", err)
	}
}
