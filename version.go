package sdk

// Version is the published SDK version.
// 0.5.0: Add lawyer directory, dashboard summaries, and lawyer profile endpoints;
// boot spends at most one refresh attempt and defers navigation until it finishes.
// 0.4.0: Deduplicate concurrent 401 refreshes behind a shared in-flight call.
// 0.3.0: Add lawyer case endpoints (available/assigned/accept/status) and case comments.
// 0.2.0: Breaking - session mutations are serialized behind session.Manager; route
// guards return Decisions and leave navigation to the caller.
const Version = "0.5.0"
