// Copyright (c) 2026 Lowstock contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package menu is the interactive text boundary in front of the service.

A session starts with a login prompt: display name plus an administrator
yes/no. Identity is self-declared; there is no authentication. It then
loops over a numbered menu: report a shortage, list shortages, delete one,
switch user, quit.

The menu owns input validation: priority must parse as a number in range,
rooms and categories must name a known member, filter dates are YYYY-MM-DD.
Bad input is reported and the menu re-shows; nothing crashes the loop. The
service only ever receives well-formed values.

Input and output are io.Reader/io.Writer, so tests drive a whole session
from a strings.Reader and assert on the transcript. Listing output shows
relative ages ("3 hours ago") via go-humanize.
*/
package menu
