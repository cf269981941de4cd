/*
Package art is responsible for finding release covers which the metal catalog does
not have.

It finds a cover by first querying the MusicBrainz web service for release IDs using
the artist name and album name. Then using these IDs it queries the Cover Art Archive
for the corresponding front image.

The following APIs are used to achieve this packages' objective:

  - MusicBrainz API: https://musicbrainz.org/doc/Development/XML_Web_Service/Version_2
  - Cover Art Archive: https://musicbrainz.org/doc/Cover_Art_Archive/
*/
package art
