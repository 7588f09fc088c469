package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

// Factor de trabajo bcrypt. Cada hash lleva salt aleatorio: el mismo password
// produce hashes distintos en cada llamada.
const hashCost = 10

// HashPassword aplica bcrypt al password en claro.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compara un password en claro contra su hash bcrypt.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// PrepareWrite aplica la regla "si el payload trae credencial, se hashea
// exactamente una vez" antes de cualquier escritura de User. Es la única
// puerta por la que un password en claro entra al dominio; nunca se loguea
// ni se persiste sin hashear. Con plaintext vacío no toca el hash existente.
func PrepareWrite(u *entity.User, plaintext string) error {
	if plaintext == "" {
		return nil
	}
	hash, err := HashPassword(plaintext)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}
