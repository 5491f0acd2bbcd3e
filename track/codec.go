package track

// Codec parses and serializes track documents. Implementations own the
// file-format grammar; the alignment engine depends only on this interface.
type Codec interface {
	Parse(data []byte) (*Document, error)
	Serialize(doc *Document) ([]byte, error)
}
