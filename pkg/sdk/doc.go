// Package matchmaker provides a Go client for the matchmaker job-search
// HTTP API.
//
//	client, _ := matchmaker.New("http://localhost:8080",
//	    matchmaker.WithAPIKey("secret"),
//	)
//	resp, _ := client.Search(ctx, "python developer in Dhaka")
//	for _, job := range resp.Results {
//	    fmt.Println(job.Title, job.MatchScore)
//	}
//
// API errors carry the server's error code and map onto the package
// sentinels, so callers can branch with errors.Is:
//
//	_, err := client.GetJob(ctx, id)
//	if errors.Is(err, matchmaker.ErrJobNotFound) { ... }
package matchmaker
