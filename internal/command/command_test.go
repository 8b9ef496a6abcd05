package command

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ximinez/ripple-offline-tool/internal/serialize"
	"github.com/ximinez/ripple-offline-tool/internal/signing"
	"github.com/ximinez/ripple-offline-tool/internal/testutil"
	"github.com/ximinez/ripple-offline-tool/pkg/binarycodec"
	"github.com/ximinez/ripple-offline-tool/pkg/ripplekey"
)

var shortTx = testutil.UnsignedTx.Hex[:192]

type testRouter struct {
	*Router
	out *bytes.Buffer
}

func newTestRouter(stdin string) testRouter {
	out := &bytes.Buffer{}
	return testRouter{
		Router: NewRouter(IO{In: strings.NewReader(stdin), Out: out}),
		out:    out,
	}
}

func newKeyFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), ".ripple", "secret-key.txt")
	key, err := ripplekey.NewRippleKey(ripplekey.NewRippleKeyOpts{})
	require.NoError(t, err)
	require.NoError(t, key.WriteToFile(path))
	return path
}

func strPtr(s string) *string {
	return &s
}

func TestSerialize(t *testing.T) {
	for _, tt := range []testutil.KnownItem{testutil.SignedTx, testutil.UnsignedTx, testutil.Metadata} {
		r := newTestRouter("")
		require.NoError(t, r.Run("serialize", []string{tt.JSON}, InputCommandLine, Options{}))
		assert.Equal(t, tt.Hex+"\n", r.out.String())

		r = newTestRouter(tt.JSON)
		require.NoError(t, r.Run("serialize", nil, InputStdin, Options{}))
		assert.Equal(t, tt.Hex+"\n", r.out.String())
	}

	r := newTestRouter("")
	err := r.Run("serialize", []string{"Hello, world!"}, InputCommandLine, Options{})
	require.Error(t, err)
	assert.Equal(t, `Unable to serialize "Hello, world!"`, err.Error())
	assert.Empty(t, r.out.String())
}

func TestDeserialize(t *testing.T) {
	for _, tt := range []testutil.KnownItem{testutil.SignedTx, testutil.UnsignedTx, testutil.Metadata} {
		r := newTestRouter("  " + tt.Hex + "\n\n")
		require.NoError(t, r.Run("deserialize", nil, InputStdin, Options{}))
		assert.JSONEq(t, withoutHash(t, tt.JSON), r.out.String())
	}

	tests := []struct {
		input string
		msg   string
	}{
		{
			"Hello, world!",
			"Unable to deserialize \"Hello, world!\"\nIs this valid serialized data?",
		},
		{
			shortTx,
			"Unable to deserialize \"" + shortTx + "\"\nIs this valid serialized data?\n" +
				"\tDetail: invalid SerialIter getBitString",
		},
	}

	for _, tt := range tests {
		r := newTestRouter("")
		err := r.Run("deserialize", []string{tt.input}, InputCommandLine, Options{})
		require.Error(t, err)
		assert.Equal(t, tt.msg, err.Error())
		assert.Empty(t, r.out.String())
	}
}

func TestSign(t *testing.T) {
	keyFile := newKeyFile(t)
	inputs := []string{
		testutil.SignedTx.Hex,
		testutil.SignedTx.JSON,
		testutil.UnsignedTx.Hex,
		testutil.UnsignedTx.JSON,
	}

	for _, input := range inputs {
		for _, name := range []string{"sign", "multisign"} {
			r := newTestRouter(input)
			require.NoError(t, r.Run(name, nil, InputStdin, Options{KeyFile: keyFile}))

			tx, err := serialize.MakeTransaction(r.out.String())
			require.NoError(t, err)
			require.NoError(t, signing.Verify(tx))

			obj := tx.Object()
			pub, _ := obj.GetBlob("SigningPubKey")
			if name == "sign" {
				assert.NotEmpty(t, pub)
				assert.False(t, obj.Has("Signers"))
			} else {
				assert.Empty(t, pub)
				assert.False(t, obj.Has("TxnSignature"))
				assert.True(t, obj.Has("Signers"))
			}
		}
	}
}

func TestFailingSign(t *testing.T) {
	keyFile := newKeyFile(t)
	badKeyFile := filepath.Join(filepath.Dir(keyFile), "invalid.txt")

	m := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(testutil.UnsignedTx.JSON), &m))
	delete(m, "Sequence")
	noSequence, _ := json.Marshal(m)

	tests := []struct {
		input   string
		keyFile string
		kind    Kind
		detail  string
	}{
		{"Hello, world!", keyFile, KindInputParse, "Detail: invalid JSON"},
		{
			shortTx, keyFile, KindInputParse,
			"Detail: unable to deserialize (internal: invalid SerialIter getBitString)",
		},
		{
			string(noSequence), keyFile, KindStructural,
			"Detail: field 'Sequence' is required but missing",
		},
		{
			testutil.UnsignedTx.Hex, badKeyFile, KindFileSystem,
			"Reason: failed to open key file: " + badKeyFile,
		},
	}

	for _, name := range []string{"sign", "multisign", "asign"} {
		for _, tt := range tests {
			if name == "asign" && tt.kind == KindStructural {
				continue
			}
			r := newTestRouter("")
			err := r.Run(name, []string{tt.input}, InputCommandLine, Options{KeyFile: tt.keyFile})
			require.Error(t, err)

			f, ok := err.(*Failure)
			require.True(t, ok)
			assert.Equal(t, tt.kind, f.Kind, name)
			assert.Equal(t, fmt.Sprintf("Unable to sign \"%s\"\n%s", tt.input, tt.detail), err.Error())
			assert.Empty(t, r.out.String())
		}
	}
}

func TestSignSelfCheck(t *testing.T) {
	keyFile := newKeyFile(t)

	tampered := func(s signing.Signer, tx *binarycodec.Transaction) (*binarycodec.Transaction, error) {
		signed, err := signing.SingleSign(s, tx)
		if err != nil {
			return nil, err
		}
		obj := signed.Object()
		sig, _ := obj.GetBlob("TxnSignature")
		bad := append([]byte{}, sig...)
		bad[len(bad)-1] ^= 0x01
		if err := obj.Set("TxnSignature", bad); err != nil {
			return nil, err
		}
		return binarycodec.NewTransaction(obj)
	}
	unsigned := func(_ signing.Signer, tx *binarycodec.Transaction) (*binarycodec.Transaction, error) {
		obj := tx.Object()
		if err := obj.Set("SigningPubKey", []byte{}); err != nil {
			return nil, err
		}
		obj.Delete("TxnSignature")
		obj.Delete("Signers")
		return binarycodec.NewTransaction(obj)
	}

	tests := []struct {
		name   string
		sign   signFunc
		reason string
	}{
		{"tampered", tampered, "Reason: invalid signature"},
		{"unsigned", unsigned, "Reason: transaction is not signed"},
	}

	input := testutil.UnsignedTx.Hex
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter("")
			err := r.signTransaction(&input, Options{KeyFile: keyFile}, tt.sign)
			require.Error(t, err)
			assert.Equal(t, fmt.Sprintf("Unable to sign \"%s\"\n%s", input, tt.reason), err.Error())
			assert.Equal(t, KindInternal, err.(*Failure).Kind)
			assert.Empty(t, r.out.String())
		})
	}

	r := newTestRouter("")
	require.NoError(t, r.signTransaction(&input, Options{KeyFile: keyFile}, signing.SingleSign))
	assert.NotEmpty(t, r.out.String())
}

func TestArbitrarySign(t *testing.T) {
	keyFile := newKeyFile(t)

	r := newTestRouter("")
	input := `{"Account": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", "Sequence": 1}`
	require.NoError(t, r.Run("asign", []string{input}, InputCommandLine, Options{KeyFile: keyFile}))

	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(r.out.Bytes(), &out))
	assert.Equal(t, "", out["SigningPubKey"])
	assert.NotEmpty(t, out["Signature"])
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", out["Account"])
}

func TestTxHash(t *testing.T) {
	for _, input := range []string{testutil.SignedTx.Hex, testutil.SignedTx.JSON} {
		r := newTestRouter("")
		require.NoError(t, r.Run("txhash", []string{input}, InputCommandLine, Options{}))
		assert.Equal(
			t,
			"F2D008D2AABBABD2A882F9049AA873210908EC3EA1EB0A2044A66093C7ACD2B1\n",
			r.out.String(),
		)
	}

	r := newTestRouter("")
	err := r.Run("txhash", []string{"Hello, world!"}, InputCommandLine, Options{})
	assert.EqualError(t, err, "Unable to hash \"Hello, world!\"\nDetail: invalid JSON")
}

func TestCreateKeyFile(t *testing.T) {
	tests := []struct {
		keyType *string
		seed    *string
	}{
		{nil, nil},
		{nil, strPtr("masterpassphrase")},
		{strPtr("ed25519"), nil},
		{strPtr("secp256k1"), strPtr("alice")},
	}

	for _, tt := range tests {
		keyFile := filepath.Join(t.TempDir(), ".ripple", "secret-key.txt")
		opts := Options{KeyFile: keyFile, KeyType: tt.keyType}

		args, inputType := []string(nil), InputNone
		if tt.seed != nil {
			args, inputType = []string{*tt.seed}, InputCommandLine
		}

		r := newTestRouter("")
		require.NoError(t, r.Run("createkeyfile", args, inputType, opts))

		key, err := ripplekey.NewRippleKeyFromFile(keyFile)
		require.NoError(t, err)
		expected := fmt.Sprintf(
			"New ripple key created in %s\nKey type is %s, and account ID is %s\n\n"+
				"This file should be stored securely and not shared\n\n",
			keyFile, key.KeyType(), key.AccountID(),
		)
		assert.Equal(t, expected, r.out.String())

		r = newTestRouter("")
		err = r.Run("createkeyfile", nil, InputNone, Options{KeyFile: keyFile})
		require.Error(t, err)
		assert.Equal(t, "refusing to overwrite existing key file: "+keyFile, err.Error())
		assert.Equal(t, KindFileSystem, err.(*Failure).Kind)
		assert.Empty(t, r.out.String())
	}
}

func TestFailingCreateKeyFile(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), ".ripple", "secret-key.txt")

	r := newTestRouter("")
	err := r.Run("createkeyfile", nil, InputNone, Options{
		KeyFile: keyFile,
		KeyType: strPtr("NSA special"),
	})
	require.Error(t, err)
	assert.Equal(t, `invalid key type: "NSA special"`, err.Error())
	assert.Equal(t, KindKeyMaterial, err.(*Failure).Kind)

	r = newTestRouter("   ")
	err = r.Run("createkeyfile", nil, InputStdin, Options{
		KeyFile: keyFile,
		KeyType: strPtr("ed25519"),
	})
	require.Error(t, err)
	assert.Equal(t, "unable to parse seed: ", err.Error())

	_, statErr := os.Stat(keyFile)
	assert.True(t, os.IsNotExist(statErr))
	assert.Empty(t, r.out.String())

	// A parent that is a regular file.
	parent := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0600))
	underFile := filepath.Join(parent, "secret-key.txt")

	r = newTestRouter("")
	err = r.Run("createkeyfile", nil, InputNone, Options{KeyFile: underFile})
	require.Error(t, err)
	assert.Equal(t, "cannot create directory: "+parent, err.Error())
	assert.Equal(t, KindFileSystem, err.(*Failure).Kind)
	assert.Empty(t, r.out.String())
}

func TestCreateKeyFileFromWords(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), ".ripple", "secret-key.txt")
	words := "I IRE BOND BOW TRIO LAID SEAT GOAL HEN IBIS IBIS DARE"

	r := newTestRouter(words + "\n")
	require.NoError(t, r.Run("createkeyfile", nil, InputStdin, Options{KeyFile: keyFile}))
	assert.Contains(t, r.out.String(), "account ID is rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")

	data, err := os.ReadFile(keyFile)
	require.NoError(t, err)
	content := map[string]string{}
	require.NoError(t, json.Unmarshal(data, &content))
	assert.Equal(t, words, content["master_key"])
	assert.Equal(t, "snoPBrXtMeMyMHUVTgbuqAfg1SUTb", content["master_seed"])
}

func TestRunCommand(t *testing.T) {
	noArgs := []string{}
	oneArg := []string{"some data"}
	twoArgs := []string{"data", "more data"}
	argError := ErrWrongArgCount.Error()

	tests := []struct {
		command string
		args    []string
		err     string
	}{
		{"unknown", noArgs, "unknown command: unknown"},
		{"unknown", oneArg, "unknown command: unknown"},
		{"unknown", twoArgs, "unknown command: unknown"},
		{"serialize", noArgs, argError},
		{"serialize", twoArgs, argError},
		{"deserialize", noArgs, argError},
		{"deserialize", twoArgs, argError},
		{"sign", noArgs, argError},
		{"sign", twoArgs, argError},
		{"multisign", noArgs, argError},
		{"multisign", twoArgs, argError},
		{"asign", noArgs, argError},
		{"asign", twoArgs, argError},
		{"txhash", noArgs, argError},
		{"txhash", twoArgs, argError},
		{"createkeyfile", twoArgs, argError},
	}

	keyFile := filepath.Join(t.TempDir(), "secret-key.txt")
	for _, tt := range tests {
		inputType, err := ResolveInputType(false, tt.args)
		require.NoError(t, err)

		r := newTestRouter("")
		err = r.Run(tt.command, tt.args, inputType, Options{KeyFile: keyFile})
		require.Error(t, err, tt.command)
		assert.Equal(t, tt.err, err.Error(), tt.command)
		assert.Equal(t, KindArgument, err.(*Failure).Kind, tt.command)
	}

	for _, args := range [][]string{noArgs, oneArg} {
		inputType, _ := ResolveInputType(false, args)
		r := newTestRouter("")
		require.NoError(t, r.Run("createkeyfile", args, inputType, Options{KeyFile: keyFile}))
		require.NoError(t, os.Remove(keyFile))
	}
}

func TestResolveInputType(t *testing.T) {
	tests := []struct {
		stdin    bool
		args     []string
		expected InputType
		err      error
	}{
		{false, nil, InputNone, nil},
		{false, []string{"a"}, InputCommandLine, nil},
		{false, []string{"a", "b"}, InputCommandLine, nil},
		{true, nil, InputStdin, nil},
		{true, []string{"a"}, InputNone, ErrConflictingInputs},
	}

	for _, tt := range tests {
		inputType, err := ResolveInputType(tt.stdin, tt.args)
		assert.Equal(t, tt.err, err)
		assert.Equal(t, tt.expected, inputType)
	}
}

func TestCommands(t *testing.T) {
	r := NewRouter(IO{})
	assert.Equal(
		t,
		[]string{"asign", "createkeyfile", "deserialize", "multisign", "serialize", "sign", "txhash"},
		r.Commands(),
	)
	assert.Equal(t, "Create keyfile.", r.Usage("createkeyfile"))
}

func withoutHash(t *testing.T, text string) string {
	m := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(text), &m))
	delete(m, "hash")
	b, err := json.Marshal(m)
	require.NoError(t, err)
	return string(b)
}
