// Package motor implements the steady-state equivalent-circuit model of a
// three-phase induction motor.
//
// [Parameters] holds the electrical and mechanical inputs of one machine.
// [At] evaluates the model at an arbitrary rotor speed and returns an
// [OperatingPoint]; [Evaluate] uses the rotor speed stored in the
// parameters. All derived quantities are pure functions of their inputs:
//
//	p := motor.Parameters{Frequency: 60, Poles: 4, LineVoltage: 460, ...}
//	op := motor.Evaluate(p)
//	fmt.Println(op.Torque, op.Efficiency)
//
// Degenerate inputs (zero poles, zero synchronous speed, non-positive
// input power) never produce an error; every guarded quantity resolves
// to zero instead. Validation of user-supplied parameters is a separate
// concern, see [Parameters.Validate].
//
// [Sweep] re-evaluates the model across a rotor-speed range to produce
// curve data, and ClassifySlip/ClassifySpeed map an operating point to
// qualitative regime labels.
package motor
