//go:build fuzz

package aesblock_test

import (
	"bytes"
	"crypto/aes"
	"os"
	"testing"
	"time"

	aesblock "github.com/aes-engine/go-aesblock"
	rand "github.com/ericlagergren/saferand"
)

// TestFuzz runs a differential comparison against crypto/aes with
// random keys and plaintexts until the timer expires.
func TestFuzz(t *testing.T) {
	t.Run("AES-128", func(t *testing.T) {
		t.Parallel()

		testFuzz(t, 16)
	})
	t.Run("AES-192", func(t *testing.T) {
		t.Parallel()

		testFuzz(t, 24)
	})
	t.Run("AES-256", func(t *testing.T) {
		t.Parallel()

		testFuzz(t, 32)
	})
}

func testFuzz(t *testing.T, keySize int) {
	d := 2 * time.Second
	if testing.Short() {
		d = 10 * time.Millisecond
	}
	if s := os.Getenv("AESBLOCK_FUZZ_TIMEOUT"); s != "" {
		var err error
		d, err = time.ParseDuration(s)
		if err != nil {
			t.Fatal(err)
		}
	}
	tm := time.NewTimer(d)

	key := make([]byte, keySize)
	var pt [16]byte
	for i := 0; ; i++ {
		select {
		case <-tm.C:
			t.Logf("iters: %d", i)
			return
		default:
		}

		if _, err := rand.Read(key); err != nil {
			t.Fatal(err)
		}
		if _, err := rand.Read(pt[:]); err != nil {
			t.Fatal(err)
		}

		ref, err := aes.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}
		var wantCt [16]byte
		ref.Encrypt(wantCt[:], pt[:])

		var gotCt, gotPt aesblock.Block
		switch keySize {
		case 16:
			enc := aesblock.NewAES128Enc([16]byte(key))
			gotCt = enc.EncryptBlock(aesblock.NewBlock(pt))
			gotPt = enc.Decrypter().DecryptBlock(gotCt)
		case 24:
			enc := aesblock.NewAES192Enc([24]byte(key))
			gotCt = enc.EncryptBlock(aesblock.NewBlock(pt))
			gotPt = enc.Decrypter().DecryptBlock(gotCt)
		case 32:
			enc := aesblock.NewAES256Enc([32]byte(key))
			gotCt = enc.EncryptBlock(aesblock.NewBlock(pt))
			gotPt = enc.Decrypter().DecryptBlock(gotCt)
		}

		if ct := gotCt.Bytes(); !bytes.Equal(ct[:], wantCt[:]) {
			t.Fatalf("key %x, pt %x: expected %x, got %x", key, pt, wantCt, ct)
		}
		if got := gotPt.Bytes(); !bytes.Equal(got[:], pt[:]) {
			t.Fatalf("key %x, ct %x: expected %x, got %x", key, wantCt, pt, got)
		}
	}
}
