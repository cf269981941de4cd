/*
Package metallum is responsible for getting release metadata for the catalog out of
the Encyclopaedia Metallum web site.

It resolves an artist and release title into a search hit which carries the artist
and release IDs. Using the release ID it retrieves the release's song list and using
a song ID it retrieves the song's lyrics. Band logos and release covers are addressed
by a sharded path derived from the artist or release ID.

There are two ways of getting the data and both are exposed through the Finder
interface:

  - APIClient talks directly to the site's unofficial AJAX endpoints. The search
    endpoint returns a DataTables JSON envelope with HTML fragments inside, the
    release page and the lyrics endpoint return HTML.

  - BrowserClient drives a real browser through a Session. It is meant for the times
    when the site is behind an anti-bot challenge. The challenge is passed with a
    cookie value which operators obtain by hand and give to SetCookie.

Both clients use the same parsing functions so that the two payload shapes end up in
the same result types. Neither client retries anything. Callers decide which client
to use and whether to retry.
*/
package metallum
