package art

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	cca "gopkg.in/mineo/gocaa.v1"
)

const (
	musicBrainzReleaseEndpoint   = "%s/ws/2/release/"
	musicBrainzReleaseQueryValue = `release:"%s" AND artist:"%s"`

	musicBrainzRequestTimeout = 10 * time.Second
)

// FrontCover returns the front image for particular `album` by `artist`. It returns
// ErrImageNotFound when none of the matching releases has a front image.
func (c *Client) FrontCover(
	ctx context.Context,
	artist,
	album string,
) ([]byte, error) {
	mbIDs, err := c.musicBrainzReleaseIDs(ctx, artist, album)
	if err != nil {
		return nil, err
	}

	for _, mbidStr := range mbIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mbid := cca.StringToUUID(mbidStr)
		if mbid == nil {
			log.Warnf("MusicBrainz returned an invalid release ID `%s`", mbidStr)
			continue
		}

		img, err := c.caaClient.GetReleaseFront(mbid, cca.ImageSize500)
		if err == nil {
			log.Printf(
				"Downloaded cover for artist(%s) album(%s) with mbID %s",
				artist,
				album,
				mbidStr,
			)
			return img.Data, nil
		}

		var httpErr cca.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			continue
		}
		return nil, fmt.Errorf("cover art archive for %s: %w", mbidStr, err)
	}

	return nil, ErrImageNotFound
}

// musicBrainzReleaseIDs uses the MusicBrainz API to retrieve a list of matching
// MusicBrainz IDs (or mbid) for particular release.
func (c *Client) musicBrainzReleaseIDs(
	ctx context.Context,
	artist,
	album string,
) ([]string, error) {
	c.Lock()
	defer c.Unlock()

	select {
	case <-c.delayer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer c.delayer.Reset(c.delay)

	mbURL := fmt.Sprintf(musicBrainzReleaseEndpoint, c.musicBrainzAPIHost)
	req, err := http.NewRequest(http.MethodGet, mbURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating music brainz XML API req: %w", err)
	}

	query := req.URL.Query()
	query.Add("query", fmt.Sprintf(musicBrainzReleaseQueryValue, album, artist))
	req.URL.RawQuery = query.Encode()
	req.Header.Set("User-Agent", c.useragent)

	ctx, cancel := context.WithTimeout(ctx, musicBrainzRequestTimeout)
	defer cancel()
	req = req.WithContext(ctx)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("music brainz XML API returned HTTP %d", resp.StatusCode)
	}

	root := mbReleaseMetadata{}
	dec := xml.NewDecoder(resp.Body)

	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding music brainz XML API response: %w", err)
	}

	var releaseIDs []string
	for _, release := range root.ReleaseList.Releases {
		if release.Score >= c.MinScore {
			releaseIDs = append(releaseIDs, release.ID)
		}
	}

	if len(releaseIDs) < 1 {
		return nil, ErrImageNotFound
	}

	return releaseIDs, nil
}

// The following are structures only used to decode the XML response from the
// MusicBrainz API. Only the parts needed for finding covers.
type mbReleaseMetadata struct {
	ReleaseList mbReleaseList `xml:"release-list"`
}

type mbReleaseList struct {
	Releases []mbRelease `xml:"release"`
}

type mbRelease struct {
	ID    string `xml:"id,attr"`
	Score int    `xml:"score,attr"`
	Title string `xml:"title"`
}
