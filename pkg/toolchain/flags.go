package toolchain

import "sort"

// Flags collects command-line flags by name, without the leading dash.
// A flag with values is rendered once per value, a toggle is rendered alone.
type Flags map[string][]string

// Set appends values to the flag. Setting no values is a no-op.
func (f Flags) Set(flag string, values ...string) {
	if len(values) == 0 {
		return
	}
	f[flag] = append(f[flag], values...)
}

// Toggle turns on a flag that takes no value.
func (f Flags) Toggle(flag string) {
	f[flag] = nil
}

// Range calls fn for each flag in lexical order.
func (f Flags) Range(fn func(flag string, values []string, isToggle bool)) {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		values := f[name]
		fn(name, values, values == nil)
	}
}

// Args renders the flags. Single-letter flags are joined with their value
// ("-O0", "-Iinclude"), longer ones use "=" ("-std=c11").
func (f Flags) Args() []string {
	const flagStart = "-"
	var out []string

	f.Range(func(flag string, values []string, isToggle bool) {
		if isToggle {
			out = append(out, flagStart+flag)
			return
		}

		for _, value := range values {
			if len(flag) == 1 {
				out = append(out, flagStart+flag+value)
			} else {
				out = append(out, flagStart+flag+"="+value)
			}
		}
	})

	return out
}
