package ripplekey

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/ximinez/ripple-offline-tool/pkg/keys"
)

// KeyFileError reports a failure to read or write a key file. Err is one
// of the ErrKeyFile* sentinels.
type KeyFileError struct {
	Reason string
	Path   string
	Err    error
}

func (e *KeyFileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

func (e *KeyFileError) Unwrap() error {
	return e.Err
}

// keyFile is the on-disk form of a RippleKey. Field order is the order in
// which they are written.
type keyFile struct {
	KeyType       string `json:"key_type"`
	MasterSeed    string `json:"master_seed"`
	MasterSeedHex string `json:"master_seed_hex"`
	MasterKey     string `json:"master_key"`
	AccountID     string `json:"account_id"`
	PublicKey     string `json:"public_key"`
	PublicKeyHex  string `json:"public_key_hex"`
	SecretKey     string `json:"secret_key"`
	SecretKeyHex  string `json:"secret_key_hex"`
}

// NewRippleKeyFromFile loads the key material stored at path. Only the
// key_type and master_seed fields are read, everything else is derived
// again from them.
func NewRippleKeyFromFile(path string) (*RippleKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &KeyFileError{"failed to open key file", path, ErrKeyFileRead}
	}

	fields := map[string]interface{}{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &KeyFileError{"unable to parse json key file", path, ErrKeyFileContent}
	}

	values := map[string]string{}
	for _, name := range []string{"key_type", "master_seed"} {
		v, ok := fields[name]
		if !ok {
			return nil, &KeyFileError{
				fmt.Sprintf("field '%s' is missing from key file", name), path, ErrKeyFileContent,
			}
		}
		s, ok := v.(string)
		if !ok {
			return nil, &KeyFileError{
				fmt.Sprintf("field '%s' is not a string in key file", name), path, ErrKeyFileContent,
			}
		}
		values[name] = s
	}

	keyType, err := keys.ParseKeyType(values["key_type"])
	if err != nil {
		return nil, &KeyFileError{
			fmt.Sprintf("invalid 'key_type' field %q found in key file", values["key_type"]),
			path,
			ErrKeyFileContent,
		}
	}

	seed, err := keys.ParseGenericSeed(values["master_seed"])
	if err != nil {
		return nil, &KeyFileError{
			"invalid 'master_seed' field found in key file", path, ErrKeyFileContent,
		}
	}

	key, err := newRippleKey(keyType, seed)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %s key of %s from %s", keyType, key.AccountID(), path)
	return key, nil
}

// WriteToFile stores the key at path. It never overwrites: it fails when
// path exists. Missing parent directories are created.
func (k *RippleKey) WriteToFile(path string) error {
	if err := EnsureNotExist(path); err != nil {
		return err
	}

	content, err := k.keyFile()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return &KeyFileError{"cannot create directory", dir, ErrKeyFileWrite}
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return &KeyFileError{"refusing to overwrite existing key file", path, ErrKeyFileExists}
		}
		return &KeyFileError{"cannot open key file", path, ErrKeyFileWrite}
	}

	if err := writeKeyFile(f, content); err != nil {
		f.Close()
		os.Remove(path)
		return &KeyFileError{"cannot write key file", path, ErrKeyFileWrite}
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return &KeyFileError{"cannot write key file", path, ErrKeyFileWrite}
	}
	log.Debugf("wrote %s key of %s to %s", k.keyType, k.AccountID(), path)
	return nil
}

// writeKeyFile fills the freshly created key file.
var writeKeyFile = func(f *os.File, content []byte) error {
	_, err := f.Write(content)
	return err
}

// EnsureNotExist fails when something already exists at path. Any other
// problem with path is left to the code that creates it.
func EnsureNotExist(path string) error {
	if _, err := os.Lstat(path); err == nil {
		return &KeyFileError{"refusing to overwrite existing key file", path, ErrKeyFileExists}
	}
	return nil
}

func (k *RippleKey) keyFile() ([]byte, error) {
	kf := keyFile{
		KeyType:       k.keyType.String(),
		MasterSeed:    k.seed.Base58(),
		MasterSeedHex: k.seed.Hex(),
		MasterKey:     k.seed.RFC1751(),
		AccountID:     k.AccountID().String(),
		PublicKey:     k.publicKey.Base58(),
		PublicKeyHex:  k.publicKey.Hex(),
		SecretKey:     k.secretKey.Base58(),
		SecretKeyHex:  k.secretKey.Hex(),
	}
	out, err := json.MarshalIndent(kf, "", "   ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
