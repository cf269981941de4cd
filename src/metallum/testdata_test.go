package metallum_test

// releasePage is a trimmed down release page as served by the catalog.
const releasePage = `<!DOCTYPE html>
<html>
<head><title>Adramelech - Human Extermination</title></head>
<body>
<div id="album_tabs_tracklist">
<table class="display table_lyrics" cellpadding="0" cellspacing="0">
	<tbody>
		<tr class="even">
			<td width="20"><a name="4721" class="anchor"> </a>1.</td>
			<td class="wrapWords">
				Human Extermination
			</td>
			<td align="right">04:41</td>
			<td nowrap="nowrap">
				<a href="#4721" id="lyricsButton4721" onclick="toggleLyrics('4721'); return false;">Show lyrics</a>
			</td>
		</tr>
		<tr id="song4721" class="displayNone">
			<td colspan="4" id="lyrics_4721">(loading lyrics...)</td>
		</tr>
		<tr class="odd">
			<td width="20"><a name="4722" class="anchor"> </a>2.</td>
			<td class="wrapWords">Thoughts of Ancient Wisdom</td>
			<td align="right">05:02</td>
			<td nowrap="nowrap"><em>instrumental</em></td>
		</tr>
		<tr class="even">
			<td width="20"><a name="4723" class="anchor"> </a>3.</td>
			<td class="wrapWords">Heroes in Godly Blood</td>
			<td align="right">03:58</td>
			<td nowrap="nowrap">&nbsp;</td>
		</tr>
		<tr>
			<td colspan="2"></td>
			<td align="right"><strong>13:41</strong></td>
			<td></td>
		</tr>
	</tbody>
</table>
</div>
</body>
</html>`

// searchResultsTable is the search results table as rendered by a browser.
const searchResultsTable = `<table id="searchResultsAlbum" class="display">
	<thead>
		<tr><th>Band</th><th>Release</th><th>Type</th></tr>
	</thead>
	<tbody>
		<tr class="odd">
			<td><a href="https://www.metal-archives.com/bands/Adramelech/2426">Adramelech</a></td>
			<td><a href="https://www.metal-archives.com/albums/Adramelech/Human_Extermination/73550">Human Extermination</a></td>
			<td>Demo</td>
		</tr>
		<tr class="even">
			<td><a href="https://www.metal-archives.com/bands/Adramelech/2426">Adramelech</a></td>
			<td><a href="https://www.metal-archives.com/albums/Adramelech/Psychostasia/1871">Psychostasia</a></td>
			<td>Full-length</td>
		</tr>
	</tbody>
</table>`

// emptySearchResultsTable is what the browser renders when nothing matched.
const emptySearchResultsTable = `<table id="searchResultsAlbum" class="display">
	<tbody>
		<tr class="odd"><td valign="top" colspan="3" class="dataTables_empty">No records to display.</td></tr>
	</tbody>
</table>`
