package feed

// SubscriptionExtensionName names the built-in extension providing the
// joins the note-from rule depends on
const SubscriptionExtensionName = "subscription"

// SubscriptionExtension joins each note to its author and, for a known
// viewer, to the viewer's subscription to that author. The subscription
// join is narrowed to the viewer so it never multiplies note rows.
func SubscriptionExtension() Extension {
	return Extension{
		Name: SubscriptionExtensionName,
		BuildQuery: func(sc SearchContext, notes, _ *QueryBuilder) {
			notes.LeftJoin(Join{
				Table: "actor",
				Alias: "note_actor",
				On:    "note.actor_id = note_actor.id",
			})
			if sc.Actor == nil {
				return
			}
			notes.LeftJoin(Join{
				Table: "subscription",
				Alias: "subscription",
				On:    "note.actor_id = subscription.subscribed AND subscription.subscriber = ?",
				Args:  []interface{}{sc.Actor.ID},
			})
		},
	}
}

// DefaultExtensions are the extensions every registry starts with
func DefaultExtensions() []Extension {
	return []Extension{
		SubscriptionExtension(),
	}
}
