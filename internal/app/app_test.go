package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMarketplaceApp_Initializers(t *testing.T) {
	app := NewMarketplaceApp()
	require.NotNil(t, app, "NewMarketplaceApp should not return nil")
}
