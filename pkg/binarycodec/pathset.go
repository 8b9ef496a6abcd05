package binarycodec

import (
	"errors"

	"github.com/ximinez/ripple-offline-tool/pkg/addresscodec"
)

const (
	pathEnd       = 0x00
	pathBoundary  = 0xff
	stepAccount   = 0x01
	stepCurrency  = 0x10
	stepIssuer    = 0x20
	stepTypeValid = stepAccount | stepCurrency | stepIssuer
)

// ErrInvalidPathStep ...
var ErrInvalidPathStep = errors.New("invalid path element")

// PathStep is one hop of a payment path. Nil members are absent.
type PathStep struct {
	Account  *addresscodec.AccountID
	Currency *Currency
	Issuer   *addresscodec.AccountID
}

func (p PathStep) typeByte() byte {
	var t byte
	if p.Account != nil {
		t |= stepAccount
	}
	if p.Currency != nil {
		t |= stepCurrency
	}
	if p.Issuer != nil {
		t |= stepIssuer
	}
	return t
}

// Path is an ordered list of steps.
type Path []PathStep

// PathSet is the set of alternative paths of a payment.
type PathSet []Path

func (ps PathSet) encode(s *Serializer) {
	for i, path := range ps {
		if i > 0 {
			s.Add8(pathBoundary)
		}
		for _, step := range path {
			s.Add8(step.typeByte())
			if step.Account != nil {
				s.AddRaw(step.Account[:])
			}
			if step.Currency != nil {
				s.AddRaw(step.Currency[:])
			}
			if step.Issuer != nil {
				s.AddRaw(step.Issuer[:])
			}
		}
	}
	s.Add8(pathEnd)
}

func (ps PathSet) clone() PathSet {
	out := make(PathSet, len(ps))
	for i, path := range ps {
		out[i] = append(Path(nil), path...)
	}
	return out
}

func decodePathSet(it *SerialIter) (PathSet, error) {
	var (
		set  PathSet
		path Path
	)
	for {
		t, err := it.Get8()
		if err != nil {
			return nil, err
		}
		if t == pathEnd || t == pathBoundary {
			if len(path) == 0 {
				return nil, ErrInvalidPathStep
			}
			set = append(set, path)
			path = nil
			if t == pathEnd {
				return set, nil
			}
			continue
		}
		if t&^stepTypeValid != 0 {
			return nil, ErrInvalidPathStep
		}

		var step PathStep
		if t&stepAccount != 0 {
			b, err := it.GetBitString(20)
			if err != nil {
				return nil, err
			}
			var id addresscodec.AccountID
			copy(id[:], b)
			step.Account = &id
		}
		if t&stepCurrency != 0 {
			b, err := it.GetBitString(20)
			if err != nil {
				return nil, err
			}
			var c Currency
			copy(c[:], b)
			step.Currency = &c
		}
		if t&stepIssuer != 0 {
			b, err := it.GetBitString(20)
			if err != nil {
				return nil, err
			}
			var id addresscodec.AccountID
			copy(id[:], b)
			step.Issuer = &id
		}
		path = append(path, step)
	}
}
