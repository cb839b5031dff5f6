// Package boxcrypto implements the message cipher used by carswipe direct
// messages: curve25519 key pairs and authenticated public-key encryption
// (NaCl box, XSalsa20-Poly1305) with a fresh random 24-byte nonce per message.
//
// Keys, ciphertexts and nonces cross process boundaries as standard base64
// strings. Decryption fails closed: any authentication or decoding failure
// yields common.ErrDecryptionFailed and never partial plaintext.
package boxcrypto
