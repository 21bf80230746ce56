package fetch

// Package fetch wraps the external download/transcode capability built on
// yt-dlp (via github.com/lrstanley/go-ytdlp). Given a source URL it produces
// zero or more MP3 files in a caller-owned scratch directory and surfaces
// download progress to the front ends.
