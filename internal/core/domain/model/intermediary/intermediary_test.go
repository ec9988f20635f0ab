package intermediary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardmarket/internal/core/domain/model/intermediary"
	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/errs"
)

func Test_NewIntermediary(t *testing.T) {
	t.Run("should create valid intermediary", func(t *testing.T) {
		id := kernel.NewUUID()

		i, err := intermediary.NewIntermediary(id, "CardHub BA", "ops@cardhub.example", "Buenos Aires", "argon2-hash")

		require.NoError(t, err)
		assert.True(t, i.ID().IsEqual(id))
		assert.Equal(t, "CardHub BA", i.Name())
		assert.Equal(t, "ops@cardhub.example", i.Email())
		assert.Equal(t, "Buenos Aires", i.City())
		assert.Equal(t, "argon2-hash", i.PasswordHash())
		assert.NoError(t, i.Validate())
	})

	t.Run("should accept empty city", func(t *testing.T) {
		i, err := intermediary.NewIntermediary(kernel.NewUUID(), "CardHub", "ops@cardhub.example", "", "argon2-hash")

		require.NoError(t, err)
		assert.Empty(t, i.City())
	})

	t.Run("should fail with missing required fields", func(t *testing.T) {
		tests := map[string]struct {
			name, email, hash string
		}{
			"no name":  {"", "ops@cardhub.example", "hash"},
			"no email": {"CardHub", "", "hash"},
			"no hash":  {"CardHub", "ops@cardhub.example", ""},
		}

		for testName, tt := range tests {
			t.Run(testName, func(t *testing.T) {
				_, err := intermediary.NewIntermediary(kernel.NewUUID(), tt.name, tt.email, "", tt.hash)
				assert.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})
}

func Test_Intermediary_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, err := intermediary.NewIntermediary(id, "A", "a@example.com", "", "hash")
	require.NoError(t, err)
	b, err := intermediary.RestoreIntermediary(id, "B", "b@example.com", "Rosario", "hash2")
	require.NoError(t, err)
	c, err := intermediary.NewIntermediary(kernel.NewUUID(), "A", "a@example.com", "", "hash")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
