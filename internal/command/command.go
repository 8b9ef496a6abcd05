package command

import (
	"fmt"
	"io"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/ximinez/ripple-offline-tool/internal/serialize"
	"github.com/ximinez/ripple-offline-tool/internal/signing"
	"github.com/ximinez/ripple-offline-tool/pkg/binarycodec"
	"github.com/ximinez/ripple-offline-tool/pkg/ripplekey"
)

// IO holds the streams commands read from and write results to. Failures
// are returned, not written.
type IO struct {
	In  io.Reader
	Out io.Writer
}

// Options are the settings shared by all commands.
type Options struct {
	KeyFile string
	// KeyType is only used by createkeyfile. Nil means the default type.
	KeyType *string
}

type action func(input *string, opts Options) error

type command struct {
	allowNoInput bool
	usage        string
	action       action
}

// Router maps command names to their actions.
type Router struct {
	io       IO
	commands map[string]command
}

// NewRouter returns a router with every supported command.
func NewRouter(streams IO) *Router {
	r := &Router{io: streams}
	r.commands = map[string]command{
		"serialize":     {false, "Serialize from JSON.", r.serialize},
		"deserialize":   {false, "Deserialize to JSON.", r.deserialize},
		"sign":          {false, "Sign for submission.", r.sign},
		"multisign":     {false, "Apply a multi-signature.", r.multiSign},
		"asign":         {false, "Sign arbitrary data.", r.arbitrarySign},
		"txhash":        {false, "Hash a transaction.", r.txHash},
		"createkeyfile": {true, "Create keyfile.", r.createKeyFile},
	}
	return r
}

// Commands returns the names of the supported commands, sorted.
func (r *Router) Commands() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage returns the one line description of a command.
func (r *Router) Usage(name string) string {
	return r.commands[name].usage
}

// Run resolves the input of the named command and runs it.
func (r *Router) Run(name string, args []string, inputType InputType, opts Options) error {
	cmd, ok := r.commands[name]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		return newFailure(err, err.Error())
	}

	input, err := resolveInput(inputType, args, r.io.In)
	if err != nil {
		return newFailure(err, err.Error())
	}
	if input == nil && !cmd.allowNoInput {
		return newFailure(ErrWrongArgCount, ErrWrongArgCount.Error())
	}

	log.Debugf("running %s with %s input", name, inputType)
	return cmd.action(input, opts)
}

func (r *Router) serialize(input *string, _ Options) error {
	out, err := serialize.Serialize(*input)
	if err != nil {
		log.WithError(err).Debug("serialize failed")
		return unableTo("serialize", *input, "", err)
	}
	fmt.Fprintln(r.io.Out, out)
	return nil
}

func (r *Router) deserialize(input *string, _ Options) error {
	const hint = "Is this valid serialized data?"

	obj, err := serialize.Deserialize(*input)
	if err != nil {
		f := unableTo("deserialize", *input, "", err)
		f.Lines = append(f.Lines, hint, "\tDetail: "+err.Error())
		return f
	}
	if obj == nil {
		f := unableTo("deserialize", *input, "", nil)
		f.Lines = append(f.Lines, hint)
		return f
	}
	return r.printJSON(obj)
}

func (r *Router) sign(input *string, opts Options) error {
	return r.signTransaction(input, opts, signing.SingleSign)
}

func (r *Router) multiSign(input *string, opts Options) error {
	return r.signTransaction(input, opts, signing.MultiSign)
}

type signFunc func(signing.Signer, *binarycodec.Transaction) (*binarycodec.Transaction, error)

func (r *Router) signTransaction(input *string, opts Options, sign signFunc) error {
	tx, err := serialize.MakeTransaction(*input)
	if err != nil {
		return unableTo("sign", *input, "Detail", err)
	}

	key, err := ripplekey.NewRippleKeyFromFile(opts.KeyFile)
	if err != nil {
		return unableTo("sign", *input, "Reason", err)
	}

	signed, err := sign(key, tx)
	if err != nil {
		return unableTo("sign", *input, "Reason", err)
	}
	if err := signing.Verify(signed); err != nil {
		log.WithError(err).Error("signed transaction failed verification")
		return unableTo("sign", *input, "Reason", err)
	}
	return r.printJSON(signed)
}

func (r *Router) arbitrarySign(input *string, opts Options) error {
	obj, err := serialize.MakeSignable(*input)
	if err != nil {
		return unableTo("sign", *input, "Detail", err)
	}

	key, err := ripplekey.NewRippleKeyFromFile(opts.KeyFile)
	if err != nil {
		return unableTo("sign", *input, "Reason", err)
	}

	signed, err := signing.ArbitrarySign(key, nil, obj)
	if err != nil {
		return unableTo("sign", *input, "Reason", err)
	}
	return r.printJSON(signed)
}

func (r *Router) txHash(input *string, _ Options) error {
	obj, err := serialize.MakeObject(*input)
	if err != nil {
		return unableTo("hash", *input, "Detail", err)
	}
	fmt.Fprintln(r.io.Out, obj.Hash(binarycodec.HashPrefixTransactionID))
	return nil
}

func (r *Router) createKeyFile(seed *string, opts Options) error {
	if err := ripplekey.EnsureNotExist(opts.KeyFile); err != nil {
		return newFailure(err, err.Error())
	}

	key, err := ripplekey.NewRippleKey(ripplekey.NewRippleKeyOpts{
		KeyType: opts.KeyType,
		Seed:    seed,
	})
	if err != nil {
		return newFailure(err, err.Error())
	}
	if err := key.WriteToFile(opts.KeyFile); err != nil {
		return newFailure(err, err.Error())
	}

	fmt.Fprintf(
		r.io.Out,
		"New ripple key created in %s\nKey type is %s, and account ID is %s\n\n"+
			"This file should be stored securely and not shared\n\n",
		opts.KeyFile, key.KeyType(), key.AccountID(),
	)
	return nil
}

func (r *Router) printJSON(v interface{ JSON() map[string]interface{} }) error {
	out, err := serialize.RenderJSON(v)
	if err != nil {
		f := newFailure(err, err.Error())
		f.Kind = KindInternal
		return f
	}
	fmt.Fprintln(r.io.Out, out)
	return nil
}
