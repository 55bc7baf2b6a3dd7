package pep440

import (
	"math/big"
	"math/rand"
	"reflect"
	"testing/quick"
)

func randBool(rand *rand.Rand) bool {
	return rand.Intn(2) == 1
}

func randSeg(rand *rand.Rand) *big.Int {
	return big.NewInt(int64(rand.Intn(3000)))
}

func bound(low, val, high int) int {
	if val < low {
		val = low
	}
	if val > high {
		val = high
	}
	return val
}

func (ver PublicVersion) generate(rand *rand.Rand, size int) PublicVersion {
	if randBool(rand) {
		ver.Epoch = randSeg(rand)
	}
	ver.Release = make([]*big.Int, 1+rand.Intn(bound(1, size, 10)))
	for i := range ver.Release {
		ver.Release[i] = randSeg(rand)
	}
	if randBool(rand) {
		ver.Pre = &PreRelease{
			L: []string{"a", "b", "rc"}[rand.Intn(3)],
			N: randSeg(rand),
		}
	}
	if randBool(rand) {
		ver.Post = randSeg(rand)
	}
	if randBool(rand) {
		ver.Dev = randSeg(rand)
	}
	return ver
}

// Generate implements testing/quick.Generator.
func (ver PublicVersion) Generate(rand *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(ver.generate(rand, size))
}

func (ver Version) generate(rand *rand.Rand, size int) Version {
	if randBool(rand) {
		ver.Local = make([]LocalSegment, 1+rand.Intn(bound(1, size, 10)))
		size -= len(ver.Local)
		for i := range ver.Local {
			if randBool(rand) {
				ver.Local[i] = LocalSegment{Num: randSeg(rand)}
			} else {
				buf := make([]byte, 1+rand.Intn(bound(1, size, 10)))
				size -= len(buf)
				const (
					alpha    = "abcdefghijklmnopqrstuvwxyz"
					alphadig = alpha + "0123456789"
				)
				for i := range buf {
					if i == 0 {
						buf[i] = alpha[rand.Intn(len(alpha))]
					} else {
						buf[i] = alphadig[rand.Intn(len(alphadig))]
					}
				}
				ver.Local[i] = LocalSegment{Str: string(buf)}
			}
		}
	}

	ver.PublicVersion = ver.PublicVersion.generate(rand, size)
	ver.raw = ver.String()

	return ver
}

// Generate implements testing/quick.Generator.
func (ver Version) Generate(rand *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(ver.generate(rand, size))
}

//nolint:exhaustivestruct
var _ quick.Generator = Version{}

func (op CmpOp) generate(rand *rand.Rand, _ int) CmpOp {
	// CmpOpArbitraryEq operates on raw strings rather than on a generated
	// Version, so it is not generated.
	return CmpOp(rand.Intn(int(CmpOpArbitraryEq)))
}

// Generate implements testing/quick.Generator.
func (op CmpOp) Generate(rand *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(op.generate(rand, size))
}
