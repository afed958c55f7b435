package gallery

// Package gallery owns the three photo slots on the room's walls: binding
// remote work items to framed photo planes with painted captions, and the
// serialized page-transition pipeline that slides slots off-stage, fetches
// the next page, and slides the new slots in.
