// Package lawg is the Go client for the lawg event and logging service.
//
// A Client exposes typed operations over projects, feeds, logs, and
// insights. Operations return stateful handles that cache the last
// fetched record; partial updates distinguish unset fields (left
// unchanged), explicit nulls (cleared), and values (replaced) through
// types.Optional.
//
//	client, err := lawg.NewClient(os.Getenv("LAWG_TOKEN"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	project, err := client.CreateProject(ctx, types.CreateProjectParams{
//		Name:      "My App",
//		Namespace: "my-app",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	feed, err := project.CreateFeed(ctx, types.CreateFeedParams{Name: "deploys"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	_, err = feed.CreateLog(ctx, types.CreateLogParams{
//		Title: "v2 shipped",
//		Emoji: types.Some("🚀"),
//	})
package lawg
