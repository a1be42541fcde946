package chant

import "fmt"

var (
	unitNames = [10]string{"", "いち", "に", "さん", "よん", "ご", "ろく", "なな", "はち", "きゅう"}
	tenNames  = [10]string{"", "じゅう", "にじゅう", "さんじゅう", "よんじゅう", "ごじゅう", "ろくじゅう", "ななじゅう", "はちじゅう", "きゅうじゅう"}
)

// Number returns the everyday reading of n (1-99), as used for answers.
func Number(n int) string {
	if n < 1 || n > 99 {
		panic(fmt.Sprintf("chant: number %d out of range [1,99]", n))
	}
	if n < 10 {
		return unitNames[n]
	}
	return tenNames[n/10] + unitNames[n%10]
}
