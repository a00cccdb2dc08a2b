package pkg

import (
	"crypto/ed25519"
	"crypto/rand"
	"io/ioutil"

	gossh "golang.org/x/crypto/ssh"
)

// hostSigner loads the PEM key at path, or generates an ephemeral ed25519
// key when path is empty
func hostSigner(path string) (gossh.Signer, error) {
	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return gossh.ParsePrivateKey(data)
	}
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return gossh.NewSignerFromKey(key)
}
