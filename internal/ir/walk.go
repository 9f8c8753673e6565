package ir

// WalkBody visits every action under body in source order, depth first.
// depth is 0 for actions directly in body. Returning false from fn skips the
// children of a switch. The walk uses an explicit stack, so arbitrarily deep
// decision trees are safe.
func WalkBody(body *CaseBody, fn func(depth int, a Action) bool) {
	type frame struct {
		actions []Action
		depth   int
	}
	stack := []frame{{actions: body.Actions}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.actions) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		a := top.actions[0]
		top.actions = top.actions[1:]
		depth := top.depth

		if !fn(depth, a) {
			continue
		}
		sw, ok := a.(*Switch)
		if !ok {
			continue
		}
		// кейсы кладём в обратном порядке, чтобы обходить их по порядку
		for i := len(sw.Cases) - 1; i >= 0; i-- {
			stack = append(stack, frame{actions: sw.Cases[i].Body.Actions, depth: depth + 1})
		}
	}
}

// WalkSigSpec visits s and every nested part in order.
func WalkSigSpec(s SigSpec, fn func(SigSpec)) {
	stack := []SigSpec{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil {
			continue
		}
		fn(cur)
		if c, ok := cur.(*Concat); ok {
			for i := len(c.Parts) - 1; i >= 0; i-- {
				stack = append(stack, c.Parts[i])
			}
		}
	}
}
