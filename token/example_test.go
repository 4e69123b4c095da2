package token_test

import (
	"fmt"

	"github.com/jonwraymond/brokerops/token"
)

func ExampleNewSigner() {
	// Key material is validated at construction, not at first mint.
	_, err := token.NewSigner(token.SignerConfig{})
	fmt.Println(err)
	// Output:
	// token: missing key ID
}
