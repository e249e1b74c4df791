package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueUUIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.Equal(t, []uuid.UUID{a, b}, UniqueUUIDs([]uuid.UUID{a, b, a, b, a}))
	assert.Empty(t, UniqueUUIDs(nil))
}

func TestFormatDocumentNumber(t *testing.T) {
	assert.Equal(t, "IV-100001", FormatDocumentNumber("IV", 100001))
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("secret", "alinea-erp")
	userID, companyID := uuid.New(), uuid.New()

	token, err := m.GenerateAccessToken(userID, companyID, "sales@alinea.co", []string{"sales"}, []string{"change_item_price"}, time.Hour)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, companyID, claims.CompanyID)
	assert.Equal(t, []string{"change_item_price"}, claims.Permissions)

	expired, err := m.GenerateAccessToken(userID, companyID, "", nil, nil, -time.Minute)
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(expired)
	assert.Error(t, err)

	noCompany, err := m.GenerateAccessToken(userID, uuid.Nil, "", nil, nil, time.Hour)
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(noCompany)
	assert.Error(t, err)
}
