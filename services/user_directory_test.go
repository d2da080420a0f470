package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kingofshadpow/SOS-Auto/models"
)

func testDirectory() *UserDirectory {
	return NewUserDirectory([]models.User{
		{ID: "1", Email: "client@test.com", FirstName: "Jean", LastName: "Dupont", Role: models.RoleClient},
		{ID: "2", Email: "admin@test.com", FirstName: "Marie", LastName: "Martin", Role: models.RoleAdmin},
	})
}

func TestLoginAcceptsAnyPassword(t *testing.T) {
	dir := testDirectory()

	for _, password := range []string{"password", "wrong", ""} {
		user, err := dir.Login("client@test.com", password)
		require.NoError(t, err)
		assert.Equal(t, "1", user.ID)
	}
}

func TestLoginIsCaseInsensitiveOnEmail(t *testing.T) {
	dir := testDirectory()

	user, err := dir.Login("  Client@Test.COM  ", "x")
	require.NoError(t, err)
	assert.Equal(t, "Jean", user.FirstName)
}

func TestLoginUnknownEmail(t *testing.T) {
	dir := testDirectory()

	_, err := dir.Login("ghost@test.com", "x")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegister(t *testing.T) {
	dir := testDirectory()

	user, err := dir.Register(models.RegisterRequest{
		Email:     "nouveau@test.com",
		Password:  "secret",
		FirstName: "Luc",
		LastName:  "Bernard",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleClient, user.Role)
	assert.False(t, user.CreatedAt.IsZero())

	// The hash is stored even though login never checks it
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))

	got, err := dir.Login("nouveau@test.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	dir := testDirectory()

	_, err := dir.Register(models.RegisterRequest{
		Email:     "CLIENT@test.com",
		Password:  "secret",
		FirstName: "Jean",
		LastName:  "Deux",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateProfileMergesFields(t *testing.T) {
	dir := testDirectory()

	phone := "+33612345678"
	firstName := "Jean-Pierre"
	user, err := dir.UpdateProfile("1", models.UpdateProfileRequest{
		FirstName: &firstName,
		Phone:     &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jean-Pierre", user.FirstName)
	assert.Equal(t, "Dupont", user.LastName) // untouched
	require.NotNil(t, user.Phone)
	assert.Equal(t, phone, *user.Phone)
}

func TestUpdateProfileReplacesAddressWholesale(t *testing.T) {
	dir := testDirectory()

	_, err := dir.UpdateProfile("1", models.UpdateProfileRequest{
		Address: &models.UserAddress{
			Street: "12 rue de la Paix", City: "Paris", PostalCode: "75002", Country: "France",
		},
	})
	require.NoError(t, err)

	// A second update with only the city set wipes the other fields
	user, err := dir.UpdateProfile("1", models.UpdateProfileRequest{
		Address: &models.UserAddress{City: "Lyon"},
	})
	require.NoError(t, err)

	require.NotNil(t, user.Address)
	assert.Equal(t, "Lyon", user.Address.City)
	assert.Empty(t, user.Address.Street)
	assert.Empty(t, user.Address.PostalCode)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	dir := testDirectory()

	_, err := dir.UpdateProfile("404", models.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
