// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ArkTools
// Source: github.com/arktools/metacb

package metacb

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// DetailHashKey is the fixed 64-byte key for list file integrity tags.
// The game client holds the same key; both sides must match byte for
// byte or every pathToDetails tag verifies as a mismatch. This is an
// integrity checksum scheme, not a cryptographic secret.
var DetailHashKey = []byte{
	0xd4, 0x1f, 0xdb, 0xe3, 0x37, 0xd0, 0x01, 0x68,
	0x0c, 0x2a, 0x4d, 0x43, 0xaf, 0xe5, 0x70, 0xc7,
	0x1f, 0xde, 0x85, 0xd8, 0xf3, 0xd4, 0xc4, 0x6f,
	0x37, 0x99, 0xc1, 0x8f, 0x1f, 0x50, 0x82, 0x77,
	0xac, 0xa7, 0xab, 0x63, 0x32, 0x83, 0x71, 0x0c,
	0x2b, 0xb4, 0x1a, 0x07, 0x8e, 0xfb, 0xe7, 0xc1,
	0x9c, 0xf0, 0x87, 0xa7, 0xe1, 0x37, 0x75, 0x2a,
	0xb7, 0x58, 0x1c, 0x8d, 0x9c, 0x0e, 0x3d, 0xe9,
}

// Sha256Base64 returns the base64-encoded SHA-256 digest of data.
func Sha256Base64(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// HmacSHA256Base64 returns the base64-encoded HMAC-SHA-256 tag of data under key.
func HmacSHA256Base64(data []byte, key []byte) string {
	mac := hmac.New(sha256.New, key)
	_, _ = mac.Write(data)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
