// Package encryption implements AES-256 encryption of whole payloads under
// a selectable mode of operation (CBC, CFB, OFB or CTR).
//
// Encrypted output is a bare container of the form IV || ciphertext. The
// container carries no mode marker and no integrity tag: decryption
// requires the same key and the same mode that were used at encryption
// time, and tampering is not detected. This preserves the original on-disk
// format and is a documented limitation, not an oversight.
package encryption
