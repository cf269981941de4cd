package art

import (
	"github.com/pborman/uuid"
	cca "gopkg.in/mineo/gocaa.v1"
)

//counterfeiter:generate . CAAClient

// CAAClient is the part of the Cover Art Archive client used for getting the front
// image of a release. *cca.CAAClient satisfies it.
type CAAClient interface {
	GetReleaseFront(mbid uuid.UUID, size int) (image cca.CoverArtImage, err error)
}

var _ CAAClient = (*cca.CAAClient)(nil)
