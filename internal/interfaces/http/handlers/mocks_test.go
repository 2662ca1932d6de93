package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	areadto "github.com/cragbase/cragbase/internal/application/area/dto"
	areaUsecases "github.com/cragbase/cragbase/internal/application/area/usecases"
	boulderdto "github.com/cragbase/cragbase/internal/application/boulder/dto"
	boulderUsecases "github.com/cragbase/cragbase/internal/application/boulder/usecases"
	contributiondto "github.com/cragbase/cragbase/internal/application/contribution/dto"
	mailerUsecases "github.com/cragbase/cragbase/internal/application/mailer/usecases"
	"github.com/cragbase/cragbase/internal/infrastructure/locale"
	"github.com/cragbase/cragbase/internal/shared/brand"
	"github.com/cragbase/cragbase/internal/shared/config"
	"github.com/cragbase/cragbase/internal/shared/i18n"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateAreaUC struct {
	result *areadto.AreaResponse
	err    error
	got    areadto.CreateAreaRequest
}

func (m *mockCreateAreaUC) Execute(ctx context.Context, req areadto.CreateAreaRequest) (*areadto.AreaResponse, error) {
	m.got = req
	return m.result, m.err
}

type mockGetAreaUC struct {
	result *areadto.AreaResponse
	err    error
}

func (m *mockGetAreaUC) Execute(ctx context.Context, id uint) (*areadto.AreaResponse, error) {
	return m.result, m.err
}

type mockListAreasUC struct {
	result *areadto.ListAreasResponse
	err    error
	got    areaUsecases.ListAreasQuery
}

func (m *mockListAreasUC) Execute(ctx context.Context, query areaUsecases.ListAreasQuery) (*areadto.ListAreasResponse, error) {
	m.got = query
	return m.result, m.err
}

type mockCreateBoulderUC struct {
	result *boulderdto.BoulderResponse
	err    error
	got    boulderUsecases.CreateBoulderCommand
}

func (m *mockCreateBoulderUC) Execute(ctx context.Context, cmd boulderUsecases.CreateBoulderCommand) (*boulderdto.BoulderResponse, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdateBoulderUC struct {
	result *boulderdto.BoulderResponse
	err    error
	got    boulderUsecases.UpdateBoulderCommand
}

func (m *mockUpdateBoulderUC) Execute(ctx context.Context, cmd boulderUsecases.UpdateBoulderCommand) (*boulderdto.BoulderResponse, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeleteBoulderUC struct {
	err error
	got boulderUsecases.DeleteBoulderCommand
}

func (m *mockDeleteBoulderUC) Execute(ctx context.Context, cmd boulderUsecases.DeleteBoulderCommand) error {
	m.got = cmd
	return m.err
}

type mockGetBoulderUC struct {
	result *boulderdto.BoulderResponse
	err    error
}

func (m *mockGetBoulderUC) Execute(ctx context.Context, id uint) (*boulderdto.BoulderResponse, error) {
	return m.result, m.err
}

type mockListBouldersUC struct {
	result *boulderdto.ListBouldersResponse
	err    error
	got    boulderUsecases.ListBouldersQuery
}

func (m *mockListBouldersUC) Execute(ctx context.Context, query boulderUsecases.ListBouldersQuery) (*boulderdto.ListBouldersResponse, error) {
	m.got = query
	return m.result, m.err
}

type mockListBoulderAuditsUC struct {
	result []*boulderdto.AuditResponse
	err    error
}

func (m *mockListBoulderAuditsUC) Execute(ctx context.Context, boulderID uint) ([]*boulderdto.AuditResponse, error) {
	return m.result, m.err
}

type mockSubmitContributionUC struct {
	result *contributiondto.SubmitContributionResponse
	err    error
	got    contributiondto.SubmitContributionRequest
}

func (m *mockSubmitContributionUC) Execute(ctx context.Context, req contributiondto.SubmitContributionRequest) (*contributiondto.SubmitContributionResponse, error) {
	m.got = req
	return m.result, m.err
}

type mockSendTestEmailUC struct {
	result *mailerUsecases.SendTestEmailResult
	err    error
	got    mailerUsecases.SendTestEmailCommand
}

func (m *mockSendTestEmailUC) Execute(ctx context.Context, cmd mailerUsecases.SendTestEmailCommand) (*mailerUsecases.SendTestEmailResult, error) {
	m.got = cmd
	return m.result, m.err
}

// =====================================================================
// Translator fixture
// =====================================================================

const testLocales = `
en:
  areas:
    created: "Area created"
  boulders:
    created: "Boulder created"
    updated: "Boulder updated"
    deleted: "Boulder deleted"
    count:
      zero: "No boulders"
      one: "1 boulder"
      other: "{{ count }} boulders"
  greeting: "Welcome to {{ brand_name }}, {{ name }}"
fr:
  boulders:
    created: "Bloc créé"
    count:
      one: "{{ count }} bloc"
      other: "{{ count }} blocs"
`

func newTestTranslator(t *testing.T) *i18n.Translator {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yml"), []byte(testLocales), 0o600))

	catalog, err := locale.NewCatalog(dir, "en", logger.NewNop())
	require.NoError(t, err)

	b, err := brand.New(config.BrandConfig{
		Name:    "Cragbase",
		Contact: config.BrandContactConfig{Email: "hello@cragbase.example"},
	})
	require.NoError(t, err)

	return i18n.NewTranslator(catalog, b)
}
