package ripplekey

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ximinez/ripple-offline-tool/internal/testutil"
)

func TestKeyFileRoundTrip(t *testing.T) {
	tests := []NewRippleKeyOpts{
		{},
		{KeyType: strPtr("ed25519")},
		{Seed: strPtr("masterpassphrase")},
		{KeyType: strPtr("ed25519"), Seed: strPtr("alice")},
	}

	for _, opts := range tests {
		path := filepath.Join(t.TempDir(), ".ripple", "secret-key.txt")

		key, err := NewRippleKey(opts)
		require.NoError(t, err)
		require.NoError(t, key.WriteToFile(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		loaded, err := NewRippleKeyFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, *key, *loaded)
	}
}

func TestKeyFileContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")

	key, err := NewRippleKey(NewRippleKeyOpts{Seed: strPtr("masterpassphrase")})
	require.NoError(t, err)
	require.NoError(t, key.WriteToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	fields := map[string]string{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Len(t, fields, 9)
	assert.Equal(t, "secp256k1", fields["key_type"])
	assert.Equal(t, "snoPBrXtMeMyMHUVTgbuqAfg1SUTb", fields["master_seed"])
	assert.Equal(t, "DEDCE9CE67B451D852FD4E846FCDE31C", fields["master_seed_hex"])
	assert.Equal(t, testutil.Secp256k1Vectors.Masterpassphrase.Account, fields["account_id"])
	assert.Equal(t, "aBQG8RQAzjs1eTKFEAQXr2gS4utcDiEC9wmi7pfUPTi27VCahwgw", fields["public_key"])
	assert.Equal(t, testutil.Secp256k1Vectors.Masterpassphrase.PublicKey, fields["public_key_hex"])
	assert.Equal(
		t,
		"1ACAAEDECE405B2A958212629E16F2EB46B153EEE94CDD350FDEFF52795525B7",
		fields["secret_key_hex"],
	)
	assert.Equal(t, "I IRE BOND BOW TRIO LAID SEAT GOAL HEN IBIS IBIS DARE", fields["master_key"])

	order := []string{
		"key_type", "master_seed", "master_seed_hex", "master_key", "account_id",
		"public_key", "public_key_hex", "secret_key", "secret_key_hex",
	}
	last := -1
	for _, name := range order {
		i := strings.Index(string(data), `"`+name+`"`)
		assert.Greater(t, i, last, name)
		last = i
	}

	// The master key alone is enough to restore the key.
	restored, err := NewRippleKey(NewRippleKeyOpts{Seed: strPtr(fields["master_key"])})
	require.NoError(t, err)
	assert.Equal(t, key.AccountID(), restored.AccountID())
}

func TestFailingWriteToFile(t *testing.T) {
	dir := t.TempDir()
	key, err := NewRippleKey(NewRippleKeyOpts{})
	require.NoError(t, err)

	existing := filepath.Join(dir, "existing.txt")
	require.NoError(t, os.WriteFile(existing, []byte("keep me"), 0600))

	err = key.WriteToFile(existing)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyFileExists)
	assert.Equal(t, "refusing to overwrite existing key file: "+existing, err.Error())
	data, _ := os.ReadFile(existing)
	assert.Equal(t, "keep me", string(data))

	nested := filepath.Join(existing, "secret-key.txt")
	err = key.WriteToFile(nested)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyFileWrite)
	assert.Equal(t, "cannot create directory: "+existing, err.Error())

	deeper := filepath.Join(existing, "sub", "secret-key.txt")
	err = key.WriteToFile(deeper)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyFileWrite)
	assert.Equal(t, "cannot create directory: "+filepath.Dir(deeper), err.Error())
}

func TestFailingWriteRemovesKeyFile(t *testing.T) {
	write := writeKeyFile
	t.Cleanup(func() { writeKeyFile = write })
	writeKeyFile = func(f *os.File, content []byte) error {
		if _, err := f.Write(content[:10]); err != nil {
			return err
		}
		return errors.New("disk full")
	}

	key, err := NewRippleKey(NewRippleKeyOpts{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "secret-key.txt")
	err = key.WriteToFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyFileWrite)
	assert.Equal(t, "cannot write key file: "+path, err.Error())

	_, statErr := os.Lstat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFailingNewRippleKeyFromFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		return path
	}

	missing := filepath.Join(dir, "invalid.txt")
	notJSON := write("notjson.txt", "this is not json")
	noKeyType := write("nokeytype.txt", `{"master_seed": "masterpassphrase"}`)
	noSeed := write("noseed.txt", `{"key_type": "ed25519"}`)
	badKeyType := write("badkeytype.txt", `{"key_type": "sha1", "master_seed": "alice"}`)
	badSeed := write("badseed.txt", `{"key_type": "ed25519", "master_seed": ""}`)
	numericSeed := write("numericseed.txt", `{"key_type": "ed25519", "master_seed": 12}`)
	numericKeyType := write("numerickeytype.txt", `{"key_type": 1, "master_seed": "alice"}`)

	tests := []struct {
		path string
		err  error
		msg  string
	}{
		{missing, ErrKeyFileRead, "failed to open key file: " + missing},
		{notJSON, ErrKeyFileContent, "unable to parse json key file: " + notJSON},
		{noKeyType, ErrKeyFileContent, "field 'key_type' is missing from key file: " + noKeyType},
		{noSeed, ErrKeyFileContent, "field 'master_seed' is missing from key file: " + noSeed},
		{
			badKeyType,
			ErrKeyFileContent,
			`invalid 'key_type' field "sha1" found in key file: ` + badKeyType,
		},
		{
			badSeed,
			ErrKeyFileContent,
			"invalid 'master_seed' field found in key file: " + badSeed,
		},
		{
			numericSeed,
			ErrKeyFileContent,
			"field 'master_seed' is not a string in key file: " + numericSeed,
		},
		{
			numericKeyType,
			ErrKeyFileContent,
			"field 'key_type' is not a string in key file: " + numericKeyType,
		},
	}

	for _, tt := range tests {
		_, err := NewRippleKeyFromFile(tt.path)
		require.Error(t, err)
		assert.ErrorIs(t, err, tt.err)
		assert.Equal(t, tt.msg, err.Error())
	}
}
