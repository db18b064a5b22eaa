package codelist_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-paystat/internal/codelist"
	"github.com/MKhiriev/go-paystat/internal/mock"
)

func fullTables() map[codelist.Name]codelist.CodeList {
	return map[codelist.Name]codelist.CodeList{
		codelist.Country:          {"SE": "Sweden", "no": "Norway"},
		codelist.Currency:         {"SEK": "Swedish Krona", "EUR": "Euro"},
		codelist.MerchantCategory: {"5411": "Grocery Stores and Supermarkets", "G001": "Agricultural services"},
		codelist.SNI:              {"47112": "Livsmedelshandel med brett sortiment"},
		codelist.Locality:         {"Stockholm": "Stockholm"},
	}
}

// ─────────────────────────────────────────────
// NewRegistry
// ─────────────────────────────────────────────

func TestNewRegistry_EmbeddedSource_LoadsEveryTable(t *testing.T) {
	reg, err := codelist.NewRegistry(context.Background(), codelist.NewEmbeddedSource())
	require.NoError(t, err)

	for _, name := range codelist.Names() {
		assert.Positive(t, reg.Len(name), "table %s must not be empty", name)
	}

	assert.True(t, reg.Has(codelist.Country, "SE"))
	assert.True(t, reg.Has(codelist.Currency, "EUR"))
	assert.True(t, reg.Has(codelist.MerchantCategory, "5411"))
	assert.True(t, reg.Has(codelist.MerchantCategory, "G001"))
	assert.False(t, reg.Has(codelist.MerchantCategory, "9999"))
	assert.True(t, reg.Has(codelist.Locality, "Göteborg"))
}

func TestNewRegistry_MockSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(fullTables(), nil)

	reg, err := codelist.NewRegistry(context.Background(), source)
	require.NoError(t, err)

	description, ok := reg.Lookup(codelist.Country, "se")
	require.True(t, ok)
	assert.Equal(t, "Sweden", description)

	// keys are normalized on load as well as on lookup
	assert.True(t, reg.Has(codelist.Country, "NO"))
	assert.True(t, reg.Has(codelist.Locality, "STOCKHOLM"))
}

func TestNewRegistry_SourceError_IsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockSource(ctrl)
	boom := errors.New("boom")
	source.EXPECT().Load(gomock.Any()).Return(nil, boom)

	reg, err := codelist.NewRegistry(context.Background(), source)

	assert.Nil(t, reg)
	require.ErrorIs(t, err, codelist.ErrLoad)
	assert.ErrorIs(t, err, boom)
}

func TestNewRegistry_Failures(t *testing.T) {
	tests := []struct {
		name    string
		tables  func() map[codelist.Name]codelist.CodeList
		wantErr error
	}{
		{
			name: "missing table",
			tables: func() map[codelist.Name]codelist.CodeList {
				tables := fullTables()
				delete(tables, codelist.SNI)
				return tables
			},
			wantErr: codelist.ErrMissingList,
		},
		{
			name: "empty table",
			tables: func() map[codelist.Name]codelist.CodeList {
				tables := fullTables()
				tables[codelist.Currency] = codelist.CodeList{}
				return tables
			},
			wantErr: codelist.ErrEmptyList,
		},
		{
			name: "unknown table",
			tables: func() map[codelist.Name]codelist.CodeList {
				tables := fullTables()
				tables["postcode"] = codelist.CodeList{"11122": "Stockholm"}
				return tables
			},
			wantErr: codelist.ErrUnknownList,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mock.NewMockSource(ctrl)
			source.EXPECT().Load(gomock.Any()).Return(tt.tables(), nil)

			_, err := codelist.NewRegistry(context.Background(), source)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestNewRegistry_LaterSourceReplacesTable verifies that a table provided by
// a later source fully replaces the earlier one.
func TestNewRegistry_LaterSourceReplacesTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := mock.NewMockSource(ctrl)
	override := mock.NewMockSource(ctrl)

	base.EXPECT().Load(gomock.Any()).Return(fullTables(), nil)
	override.EXPECT().Load(gomock.Any()).Return(map[codelist.Name]codelist.CodeList{
		codelist.Country: {"FI": "Finland"},
	}, nil)

	reg, err := codelist.NewRegistry(context.Background(), base, override)
	require.NoError(t, err)

	assert.True(t, reg.Has(codelist.Country, "FI"))
	assert.False(t, reg.Has(codelist.Country, "SE"))
	assert.True(t, reg.Has(codelist.Currency, "SEK"))
}

// ─────────────────────────────────────────────
// DirSource
// ─────────────────────────────────────────────

func TestDirSource_ReadsPresentFilesOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sni.yaml"), []byte(`"01110": "Odling av spannmål"`+"\n"), 0o600))

	lists, err := codelist.NewDirSource(dir).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, lists, 1)
	assert.Equal(t, "Odling av spannmål", lists[codelist.SNI]["01110"])
}

func TestDirSource_OverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locality.yaml"), []byte(`"KIRUNA": "Kiruna"`+"\n"), 0o600))

	reg, err := codelist.NewRegistry(context.Background(), codelist.NewEmbeddedSource(), codelist.NewDirSource(dir))
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Len(codelist.Locality))
	assert.True(t, reg.Has(codelist.Country, "SE"))
}

func TestDirSource_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := codelist.NewDirSource(filepath.Join(t.TempDir(), "nope")).Load(context.Background())
		require.Error(t, err)
	})

	t.Run("path is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.yaml")
		require.NoError(t, os.WriteFile(file, []byte("{}"), 0o600))

		_, err := codelist.NewDirSource(file).Load(context.Background())
		require.ErrorIs(t, err, codelist.ErrNotDirectory)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "country.yaml"), []byte("- just\n- a list\n"), 0o600))

		_, err := codelist.NewDirSource(dir).Load(context.Background())
		require.Error(t, err)
	})
}

func TestMismatch(t *testing.T) {
	assert.Equal(t, "Merchant category code is incorrect. Got 9999.", codelist.Mismatch(codelist.MerchantCategory, "9999"))
	assert.Contains(t, codelist.Mismatch(codelist.Country, "XX"), "ISO 3166-1 alpha-2")
}
