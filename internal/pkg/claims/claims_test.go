package claims

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeToken(t *testing.T) (*jwtauth.JWTAuth, jwt.Token, string) {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("claims-test-secret"), nil)
	token, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id":   "usr-1",
		"email":     "manager@example.com",
		"role":      string(user.RoleManager),
		"store_ids": []string{"str-1", "str-2"},
		"type":      "access",
	})
	require.NoError(t, err)
	return ja, token, tokenString
}

// In-process tokens carry store_ids as []string.
func TestFromContext_EncodedToken(t *testing.T) {
	_, token, _ := encodeToken(t)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	c, err := FromContext(ctx)
	require.NoError(t, err)

	assert.Equal(t, "usr-1", c.UserID)
	assert.Equal(t, user.RoleManager, c.Role)
	assert.Equal(t, []string{"str-1", "str-2"}, c.StoreIDs)
}

// Tokens parsed off the wire carry store_ids as []interface{}.
func TestFromContext_ParsedToken(t *testing.T) {
	ja, _, tokenString := encodeToken(t)
	token, err := jwtauth.VerifyToken(ja, tokenString)
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	c, err := FromContext(ctx)
	require.NoError(t, err)

	assert.Equal(t, "usr-1", c.UserID)
	assert.Equal(t, "manager@example.com", c.Email)
	assert.Equal(t, []string{"str-1", "str-2"}, c.StoreIDs)
	assert.NoError(t, c.RequireStore("str-2"))
	assert.ErrorIs(t, c.RequireStore("str-9"), user.ErrStoreOutsideScope)
}

func TestFromContext_MissingUserID(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("claims-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"email": "x@example.com"})
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	_, err = FromContext(ctx)
	assert.Error(t, err)
}
