// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package members

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidCredentialLength indicates a generated password or PIN length below one
var ErrInvalidCredentialLength = errors.New("credential length must be at least 1")

const (
	passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	pinAlphabet      = "0123456789"
)

// SanitizeUsername reduces a login name to the ASCII letters and digits the
// remote ledger accepts. Accented letters are folded to their base letter and
// everything else is dropped
func SanitizeUsername(username string) string {
	folder := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	folded, _, err := transform.String(folder, username)
	if err != nil {
		folded = username
	}
	var ret strings.Builder
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			ret.WriteRune(r)
		}
	}
	return ret.String()
}

func randomString(alphabet string, length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidCredentialLength, length)
	}
	limit := big.NewInt(int64(len(alphabet)))
	ret := make([]byte, length)
	for i := range ret {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		ret[i] = alphabet[n.Int64()]
	}
	return string(ret), nil
}

// GeneratePassword returns a random password of the given length
func GeneratePassword(length int) (string, error) {
	return randomString(passwordAlphabet, length)
}

// GeneratePin returns a random numeric PIN of the given length
func GeneratePin(length int) (string, error) {
	return randomString(pinAlphabet, length)
}
