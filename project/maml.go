package project

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"chb/common"
)

// Reader extracts the declared id and document kind from MAML content files.
type Reader struct {
	log *zap.Logger
}

func NewReader(log *zap.Logger) *Reader {
	return &Reader{log: log}
}

var kindByElement = map[string]common.DocumentKind{
	"developerConceptualDocument":             common.DocumentKindConceptual,
	"developerGlossaryDocument":               common.DocumentKindGlossary,
	"developerHowToDocument":                  common.DocumentKindHowTo,
	"developerOrientationDocument":            common.DocumentKindOrientation,
	"developerReferenceWithSyntaxDocument":    common.DocumentKindReference,
	"developerReferenceWithoutSyntaxDocument": common.DocumentKindReference,
	"developerSampleDocument":                 common.DocumentKindSample,
	"developerTroubleshootingDocument":        common.DocumentKindTroubleshooting,
	"developerWalkthroughDocument":            common.DocumentKindWalkthrough,
	"developerWhitePaperDocument":             common.DocumentKindWhitepaper,
}

// ReadTopicFile parses the content file and returns the id declared on its
// topic element along with the document kind derived from the first child
// element. A well-formed file whose root is not a topic element yields the
// invalid kind without an error, malformed XML is an error.
func (r *Reader) ReadTopicFile(path string) (string, common.DocumentKind, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", common.DocumentKindInvalid, fmt.Errorf("unable to open content file %q: %w", path, err)
	}
	defer f.Close()

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(f); err != nil {
		return "", common.DocumentKindInvalid, fmt.Errorf("unable to parse content file %q: %w", path, err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "topic" {
		return "", common.DocumentKindInvalid, nil
	}
	id := root.SelectAttrValue("id", "")

	children := root.ChildElements()
	if len(children) == 0 {
		return id, common.DocumentKindNone, nil
	}
	kind, ok := kindByElement[children[0].Tag]
	if !ok {
		r.log.Debug("Unknown document element", zap.String("file", path), zap.String("tag", children[0].Tag))
		return id, common.DocumentKindInvalid, nil
	}
	return id, kind, nil
}
