package unit_tests

import (
	"testing"

	"github.com/zalando/go-keyring"

	"gitscribe/internal/services"
	"gitscribe/internal/utils"
)

func TestModelService_Catalog(t *testing.T) {
	catalog, err := services.NewModelService()
	utils.NilError(t, err)

	list := catalog.ListModels()
	if len(list) == 0 {
		t.Fatal("expected a non-empty model catalog")
	}

	def := catalog.DefaultModel()
	utils.Equal(t, def.Key, "gemini-2.5-flash")
	utils.Equal(t, def.APIName, "gemini-2.5-flash")

	mdl, err := catalog.GetModel("gemini-2.5-pro")
	utils.NilError(t, err)
	utils.Equal(t, mdl.Key, "gemini-2.5-pro")

	_, err = catalog.GetModel("claude-sonnet")
	if err == nil {
		t.Fatal("expected an error for an unknown model key")
	}
}

func TestKeyringService_RoundTrip(t *testing.T) {
	keyring.MockInit()
	service := services.NewKeyringService()

	utils.Equal(t, service.HasApiKey(), false)

	key, err := service.GetApiKey()
	utils.NilError(t, err)
	utils.Equal(t, key, "")

	utils.NilError(t, service.StoreApiKey("secret"))
	utils.Equal(t, service.HasApiKey(), true)

	key, err = service.GetApiKey()
	utils.NilError(t, err)
	utils.Equal(t, key, "secret")

	utils.NilError(t, service.DeleteApiKey())
	utils.Equal(t, service.HasApiKey(), false)

	// Deleting again is a no-op, not an error.
	utils.NilError(t, service.DeleteApiKey())
}

func TestKeyringService_EmptyKeyRejected(t *testing.T) {
	keyring.MockInit()
	service := services.NewKeyringService()

	if err := service.StoreApiKey(""); err == nil {
		t.Fatal("expected an error storing an empty key")
	}
}
