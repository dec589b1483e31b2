package maybe

// Unit carries no information. A Maybe[Unit] only says whether something
// succeeded.
type Unit struct{}

func Ok() Maybe[Unit] {
	return From(Unit{})
}
