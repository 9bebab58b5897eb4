package logs

// SelectLatest returns the regular entry with the greatest modification time.
// When several entries share that time the first one in entries wins. The
// boolean is false when entries holds no regular file.
func SelectLatest(entries []Entry) (Entry, bool) {
	var (
		latest Entry
		found  bool
	)
	for _, entry := range entries {
		if !entry.Regular {
			continue
		}
		if !found || entry.ModTime.After(latest.ModTime) {
			latest = entry
			found = true
		}
	}
	return latest, found
}
