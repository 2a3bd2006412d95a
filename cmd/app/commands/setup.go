package commands

import (
	"bufio"
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	authDomain "github.com/allisson/ciphershield/internal/auth/domain"
	authUseCase "github.com/allisson/ciphershield/internal/auth/usecase"
)

const (
	generatedPasswordLength = 20
	lowerChars              = "abcdefghijkmnopqrstuvwxyz"
	upperChars              = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digitChars              = "23456789"
	specialChars            = "!@#$%^&*-_=+?"
)

// RunSetup provisions the single local credential.
// With generate set, a random policy-compliant password is printed once; otherwise
// the password is prompted twice without echo.
//
// Requirements: Database must be migrated and accessible.
func RunSetup(
	ctx context.Context,
	credentialUseCase authUseCase.CredentialUseCase,
	logger *slog.Logger,
	email string,
	generate bool,
	rw IOTuple,
) error {
	provisioned, err := credentialUseCase.IsProvisioned(ctx)
	if err != nil {
		return fmt.Errorf("failed to check provisioning state: %w", err)
	}
	if provisioned {
		return authDomain.ErrAlreadyProvisioned
	}

	var password string
	if generate {
		password, err = generatePassword()
		if err != nil {
			return err
		}
	} else {
		password, err = promptNewPassword(rw, bufio.NewReader(rw.Reader), "Password: ")
		if err != nil {
			return err
		}
	}

	if err := credentialUseCase.Provision(ctx, &authDomain.ProvisionInput{
		Email:    email,
		Password: password,
	}); err != nil {
		return fmt.Errorf("failed to provision credential: %w", err)
	}

	_, _ = fmt.Fprintf(rw.Writer, "Credential created for %s\n", email)
	if generate {
		_, _ = fmt.Fprintln(rw.Writer, "Generated password (shown only once):")
		_, _ = fmt.Fprintln(rw.Writer, password)
	}

	logger.Info("credential provisioned", slog.String("email", email))
	return nil
}

// generatePassword returns a random password with at least one character of every
// class required by the credential policy.
func generatePassword() (string, error) {
	all := lowerChars + upperChars + digitChars + specialChars
	classes := []string{lowerChars, upperChars, digitChars, specialChars}

	out := make([]byte, 0, generatedPasswordLength)
	for _, class := range classes {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < generatedPasswordLength {
		c, err := randomChar(all)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Fisher-Yates so the class characters do not sit at fixed positions.
	for i := len(out) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		out[i], out[j.Int64()] = out[j.Int64()], out[i]
	}

	return string(out), nil
}

func randomChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, fmt.Errorf("failed to generate password: %w", err)
	}
	return charset[n.Int64()], nil
}
