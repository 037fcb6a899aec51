package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"net/http"
	"net/url"

	applog "topiray/internal/log"
)

const backupCodeAlphabet = "abcdefghijkmnpqrstuvwxyz23456789"

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func newBackupCodes(n, length int) ([]string, error) {
	codes := make([]string, 0, n)
	max := big.NewInt(int64(len(backupCodeAlphabet)))
	for i := 0; i < n; i++ {
		code := make([]byte, length)
		for j := range code {
			idx, err := rand.Int(rand.Reader, max)
			if err != nil {
				return nil, fmt.Errorf("generate backup code: %w", err)
			}
			code[j] = backupCodeAlphabet[idx.Int64()]
		}
		codes = append(codes, string(code))
	}
	return codes, nil
}

// deliverLink hands an account link to the outbox. The demo host has no mail
// transport, so the link is logged.
func deliverLink(r *http.Request, purpose, email, path, token string) {
	link := path + "?" + url.Values{"token": {token}}.Encode()
	applog.Info(r.Context(), "account link issued", "purpose", purpose, "email", email, "link", link)
}
