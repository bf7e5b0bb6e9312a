package application

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/infrastructure/jsonfile"
)

func TestCatalog(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	path := filepath.Join(store.Dir(), "destinations.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"goa","name":"Goa","description":"beaches"},{"id":"bali","name":"Bali","description":"temples"}]`), 0o644))

	require.NoError(t, store.Packages().Create(ctx, &entity.Package{DestinationID: "goa", Name: "Goa Getaway"}))
	require.NoError(t, store.Packages().Create(ctx, &entity.Package{DestinationID: "bali", Name: "Bali Escape"}))

	svc := NewCatalogService(jsonfile.NewDestinationCatalog(path), store.Packages())

	ds, err := svc.Destinations(ctx)
	require.NoError(t, err)
	assert.Len(t, ds, 2)

	d, err := svc.Destination(ctx, "bali")
	require.NoError(t, err)
	assert.Equal(t, "Bali", d.Name)
	_, err = svc.Destination(ctx, "mars")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	goa, err := svc.Packages(ctx, "goa")
	require.NoError(t, err)
	require.Len(t, goa, 1)
	assert.Equal(t, "Goa Getaway", goa[0].Name)

	none, err := svc.Packages(ctx, " ")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
