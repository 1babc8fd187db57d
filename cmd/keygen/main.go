// keygen generates a new client access key and the SHA-256 digest to store in
// ACCESS_KEY_HASH. The key is printed once and never persisted.
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log"
)

func main() {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		log.Fatal(err)
	}

	accessKey := base64.RawURLEncoding.EncodeToString(raw)
	digest := sha256.Sum256([]byte(accessKey))

	fmt.Println(accessKey)
	fmt.Println(hex.EncodeToString(digest[:]))
}
