package pipe

// Count drains input once, on the first pull, and then yields the number of
// items it saw forever. Iterating the result again replays the cached count
// without touching input. An error from input is yielded instead and ends
// every iteration.
func Count(ctx *Context, input Seq, _ Conf, _ *Terminals) Seq {
	var (
		drained bool
		count   int
		failure error
	)

	return func(yield func(any, error) bool) {
		if !drained {
			drained = true
			count, failure = drain(input)
			ctx.logger().Verbose("count: %d items", count)
		}

		if failure != nil {
			yield(nil, failure)
			return
		}

		for yield(count, nil) {
		}
	}
}

func drain(input Seq) (int, error) {
	n := 0

	if input == nil {
		return n, nil
	}

	for _, err := range input {
		if err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}
