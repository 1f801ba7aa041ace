package auth

// BcryptHasher реализует services.Hasher поверх bcrypt
type BcryptHasher struct{}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	return HashPassword(plaintext)
}
