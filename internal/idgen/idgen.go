// Package idgen produces run-unique identifiers and the format-constrained
// numbers the fixtures need (phones, merchant numbers, gateway references).
package idgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	digits     = "0123456789"
	lowerAlnum = digits + "abcdefghijklmnopqrstuvwxyz"
	upperAlnum = digits + "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	mixedAlnum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" + digits

	stampLayout = "20060102150405"
)

// Mobile number prefixes accepted as valid
var PhonePrefixes = []string{
	"130", "131", "132", "133", "134", "135", "136", "137", "138", "139",
	"150", "151", "152", "153", "155", "156", "157", "158", "159",
	"180", "181", "182", "183", "184", "185", "186", "187", "188", "189",
}

type Generator struct {
	rng   *rand.Rand
	clock func() time.Time

	// Incremented on every Next call; the only thing that makes ids unique within a run
	counter uint64
}

func New(rng *rand.Rand, clock func() time.Time) *Generator {
	if clock == nil {
		clock = time.Now
	}

	return &Generator{
		rng:   rng,
		clock: clock,
	}
}

// Next returns prefix + timestamp + counter + 4 random chars.
// Never repeats within one Generator.
func (g *Generator) Next(prefix string) string {
	g.counter++
	return fmt.Sprintf("%s%s%06d%s", prefix, g.clock().Format(stampLayout), g.counter, g.random(lowerAlnum, 4))
}

// Sequential formats n zero padded to width: Sequential("user_", 5, 7) == "user_00007"
func Sequential(prefix string, width int, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// WechatID mimics a WeChat openid: "o" followed by 27 letters or digits
func (g *Generator) WechatID() string {
	return "o" + g.random(mixedAlnum, 27)
}

func (g *Generator) Phone() string {
	return PhonePrefixes[g.rng.IntN(len(PhonePrefixes))] + g.random(digits, 8)
}

func (g *Generator) MerchantNo() string {
	return "MCH" + g.random(digits, 12)
}

// MchID is the shorter merchant number of the wxpay schema, "156" + [100000, 999999]
func (g *Generator) MchID() string {
	return fmt.Sprintf("156%d", 100000+g.rng.IntN(900000))
}

func (g *Generator) BusinessLicense() string {
	return g.random(upperAlnum, 18)
}

// WechatOrderID mimics a WeChat Pay transaction id: "4200" followed by 24 digits
func (g *Generator) WechatOrderID() string {
	return "4200" + g.random(digits, 24)
}

func (g *Generator) random(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(alphabet[g.rng.IntN(len(alphabet))])
	}
	return b.String()
}
