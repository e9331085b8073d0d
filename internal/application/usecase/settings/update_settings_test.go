package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finanzas-genius/backend/internal/domain/entity"
	domainerror "github.com/finanzas-genius/backend/internal/domain/error"
)

type fakeSettingsRepo struct {
	settings *entity.Settings
	cleared  bool
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	if f.settings == nil {
		return entity.DefaultSettings(), nil
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, s *entity.Settings) error {
	f.settings = s
	return nil
}

func (f *fakeSettingsRepo) ClearAll(_ context.Context) error {
	f.settings = nil
	f.cleared = true
	return nil
}

func TestUpdateSettings(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewUpdateSettingsUseCase(repo)

	want := &entity.Settings{
		MonthlyBudget:  decimal.NewFromInt(1500),
		UserName:       "Ana",
		CurrencySymbol: "€",
		CurrencyCode:   "EUR",
		Theme:          entity.ThemeDark,
	}
	output, err := uc.Execute(context.Background(), UpdateSettingsInput{Settings: want})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.Settings != want {
		t.Errorf("output settings = %+v, want the stored instance", output.Settings)
	}
	if repo.settings != want {
		t.Errorf("settings not persisted")
	}
}

func TestUpdateSettingsRejectsNegativeBudget(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewUpdateSettingsUseCase(repo)

	s := entity.DefaultSettings()
	s.MonthlyBudget = decimal.NewFromInt(-1)
	_, err := uc.Execute(context.Background(), UpdateSettingsInput{Settings: s})
	if !errors.Is(err, domainerror.ErrInvalidBudget) {
		t.Errorf("error = %v, want ErrInvalidBudget", err)
	}
	if repo.settings != nil {
		t.Errorf("rejected settings were persisted")
	}
}

func TestUpdateSettingsRejectsUnknownTheme(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewUpdateSettingsUseCase(repo)

	s := entity.DefaultSettings()
	s.Theme = entity.Theme("sepia")
	_, err := uc.Execute(context.Background(), UpdateSettingsInput{Settings: s})
	if !errors.Is(err, domainerror.ErrInvalidTheme) {
		t.Errorf("error = %v, want ErrInvalidTheme", err)
	}
}

func TestGetSettingsReturnsDefaultsWhenUnset(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := NewGetSettingsUseCase(repo)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if output.Settings.UserName != "Usuario" || output.Settings.CurrencyCode != "USD" {
		t.Errorf("settings = %+v, want defaults", output.Settings)
	}
}

func TestClearData(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &entity.Settings{UserName: "Ana"}}
	uc := NewClearDataUseCase(repo)

	if err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !repo.cleared {
		t.Errorf("ClearAll was not invoked")
	}
}
