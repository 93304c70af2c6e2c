package render

import "testing"

func TestProjectWallFrontFacing(t *testing.T) {
	m := singleRoom()
	cam := viewTransform(&m.Player)

	// The north wall spans the whole view.
	pw, ok := projectWall(m, 0, &m.Walls[0], &m.Walls[1], cam)
	if !ok {
		t.Fatal("front wall rejected")
	}
	if pw.xl > pw.xr {
		t.Fatalf("xl %d > xr %d", pw.xl, pw.xr)
	}
	if pw.xl > 0 || pw.xr < Width-1 {
		t.Errorf("wall span [%d, %d], want the full frame width", pw.xl, pw.xr)
	}
	if pw.next != -1 {
		t.Errorf("next = %d, want -1 for a solid wall", pw.next)
	}
	// Ceiling above the eye, floor below.
	if pw.topL >= Height/2 || pw.botL <= Height/2 {
		t.Errorf("top %d / bot %d do not straddle the horizon", pw.topL, pw.botL)
	}
	// A solid wall's portal edges coincide with its outer edges.
	if pw.portalTopL != pw.topL || pw.portalBotL != pw.botL {
		t.Errorf("portal edges diverge on a solid wall: %+v", pw)
	}
}

func TestProjectWallBehindRejected(t *testing.T) {
	m := singleRoom()
	cam := viewTransform(&m.Player)

	// The south wall is behind the player.
	if _, ok := projectWall(m, 0, &m.Walls[2], &m.Walls[3], cam); ok {
		t.Error("wall behind the near plane accepted")
	}
}

func TestProjectWallBackFaceRejected(t *testing.T) {
	m := twoRooms()
	cam := viewTransform(&m.Player)

	// Sector 1's shared wall runs opposite to sector 0's: seen from
	// sector 0's side it faces away.
	if _, ok := projectWall(m, 1, &m.Walls[6], &m.Walls[7], cam); ok {
		t.Error("back-facing wall accepted")
	}
}

func TestProjectWallPortalEdges(t *testing.T) {
	m := twoRooms()
	cam := viewTransform(&m.Player)

	pw, ok := projectWall(m, 0, &m.Walls[0], &m.Walls[1], cam)
	if !ok {
		t.Fatal("portal wall rejected")
	}
	if pw.next != 1 {
		t.Errorf("next = %d, want 1", pw.next)
	}
	// Far ceiling is lower: the opening starts below the outer top.
	if pw.portalTopL <= pw.topL {
		t.Errorf("portal top %d not below top %d", pw.portalTopL, pw.topL)
	}
	// Far floor is higher: the opening ends above the outer bottom.
	if pw.portalBotL >= pw.botL {
		t.Errorf("portal bot %d not above bot %d", pw.portalBotL, pw.botL)
	}
}

func TestProjectWallCloserSortsFirst(t *testing.T) {
	m := singleRoom()
	cam := viewTransform(&m.Player)

	near, ok := projectWall(m, 0, &m.Walls[0], &m.Walls[1], cam)
	if !ok {
		t.Fatal("north wall rejected")
	}

	// Push the north wall twice as far out; its key must grow.
	far := singleRoom()
	far.Walls[0].Y = 2000
	far.Walls[1].Y = 2000
	farPW, ok := projectWall(far, 0, &far.Walls[0], &far.Walls[1], cam)
	if !ok {
		t.Fatal("far wall rejected")
	}
	if near.closest >= farPW.closest {
		t.Errorf("closest keys not ordered: near %d, far %d", near.closest, farPW.closest)
	}
}
