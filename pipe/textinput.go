package pipe

// TextInput yields the user input described by conf ("name", "default")
// forever. See Context.Input for where the value comes from.
func TextInput(ctx *Context, _ Seq, conf Conf, _ *Terminals) Seq {
	return func(yield func(any, error) bool) {
		v, err := ctx.Input(conf)
		if err != nil {
			yield(nil, err)
			return
		}

		ctx.logger().Verbose("textinput: %q", v)

		for yield(v, nil) {
		}
	}
}
