package arena

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/systems"
	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/telemetry"
)

// AdvanceTime runs one tick of length dt. It does nothing unless dt is
// positive and the arena is playing. Population and setting changes made
// during the tick are applied once it completes.
func (a *Arena) AdvanceTime(dt float64) {
	if dt <= 0 || a.status != StatusPlaying {
		return
	}

	a.perf.StartTick()
	a.stepping = true

	a.perf.StartPhase(telemetry.PhaseIntegrate)
	a.updateEntities(dt)

	a.perf.StartPhase(telemetry.PhaseStimuli)
	a.notifySensors()

	a.perf.StartPhase(telemetry.PhaseTerminal)
	a.checkLoss()

	a.perf.StartPhase(telemetry.PhaseWalls)
	a.resolveWallCollisions()

	a.perf.StartPhase(telemetry.PhaseContacts)
	a.resolveEntityCollisions()

	a.stepping = false
	a.tick++

	a.perf.StartPhase(telemetry.PhasePopulation)
	a.applyPending()

	a.perf.EndTick()
}

// updateEntities integrates every entity in creation order.
func (a *Arena) updateEntities(dt float64) {
	for _, e := range a.entities {
		switch a.idMap.Get(e).Kind {
		case components.KindRobot:
			a.updateRobot(e, dt)
		case components.KindLight:
			a.updateLight(e, dt)
		}
	}
}

// updateRobot runs a robot's own tick. Readings from the previous stimulus
// pass drive the velocity, then the rig is cleared for the next pass.
func (a *Arena) updateRobot(e ecs.Entity, dt float64) {
	pose := a.poseMap.Get(e)
	body := a.bodyMap.Get(e)
	m := a.motionMap.Get(e)
	r := a.robotMap.Get(e)

	systems.UpdateRigPose(&r.Sensors, *pose, body.Radius)

	wasDead := r.Hunger.Dead
	systems.UpdateHunger(&r.Hunger)
	if r.Hunger.Dead && !wasDead {
		id := a.idMap.Get(e)
		a.logger.Warn("robot starved", "id", id.ID, "name", id.Name, "tick", a.tick)
		a.collector.RecordDeath()
	}

	h := systems.NewMotionHandler(m, r.Behavior, a.cfg)
	if systems.StepArc(m) {
		h.SetVelocity(a.cfg.Robot.ArcSpeed, a.cfg.Robot.ArcSpeed)
		pose.Theta += a.cfg.Robot.ArcTurn
	}
	h.UpdateVelocity(systems.ReadRig(&r.Sensors), r.Hunger.Hungry, r.Hunger.Starving, pose)

	systems.Integrate(pose, m.Velocity, dt, a.cfg.Motion.WheelSeparation)
	systems.ResetRig(&r.Sensors, *pose, body.Radius)
	m.Touch = false
}

// updateLight integrates a light, then sets its speed for the next tick:
// a slow curl while the arc window is open, cruise otherwise.
func (a *Arena) updateLight(e ecs.Entity, dt float64) {
	pose := a.poseMap.Get(e)
	m := a.motionMap.Get(e)
	l := a.cfg.Light

	systems.Integrate(pose, m.Velocity, dt, a.cfg.Motion.WheelSeparation)

	if systems.StepArc(m) {
		m.Velocity = components.WheelVelocity{Left: l.ArcSpeed, Right: l.ArcSpeed}
		pose.Theta += l.ArcTurn
		return
	}
	m.Velocity = components.WheelVelocity{Left: l.CruiseSpeed, Right: l.CruiseSpeed}
}

// notifySensors feeds every light to each robot's light sensors and every
// food source to its food sensors. A food sensor within contact distance
// feeds the robot.
func (a *Arena) notifySensors() {
	sensorCfg := a.cfg.Sensor
	contact := a.cfg.Food.ContactDistance

	for _, e := range a.robots {
		r := a.robotMap.Get(e)
		rig := &r.Sensors

		for _, l := range a.lights {
			lp := *a.poseMap.Get(l)
			systems.NotifySensor(&rig.LeftLight, lp, sensorCfg)
			systems.NotifySensor(&rig.RightLight, lp, sensorCfg)
		}

		for _, f := range a.food {
			fp := *a.poseMap.Get(f)
			dl := systems.NotifySensor(&rig.LeftFood, fp, sensorCfg)
			dr := systems.NotifySensor(&rig.RightFood, fp, sensorCfg)
			if dl <= contact || dr <= contact {
				systems.ResetHunger(&r.Hunger, a.cfg.Robot)
				a.collector.RecordFoodSensorFeed()
			}
		}
	}
}

// checkLoss sets Lost once any robot has died.
func (a *Arena) checkLoss() {
	for _, e := range a.robots {
		if a.robotMap.Get(e).Hunger.Dead {
			a.setStatus(StatusLost)
			return
		}
	}
}

// resolveWallCollisions snaps mobile entities back inside the arena and
// starts their arc.
func (a *Arena) resolveWallCollisions() {
	w, h := a.Dimensions()
	inset := a.cfg.Collision.WallInset

	for _, e := range a.mobile {
		pose := a.poseMap.Get(e)
		radius := a.bodyMap.Get(e).Radius

		wall := systems.WallCollision(*pose, radius, w, h)
		if wall == components.KindUndefined {
			continue
		}
		systems.SnapFromWall(pose, radius, wall, w, h, inset)
		a.collide(e)
		a.collector.RecordWallCollision()
	}
}

// resolveEntityCollisions checks every ordered (mobile, other) pair.
// Same-kind pairs are pushed apart and both members react; a robot over food
// is fed. Every other pairing passes through.
func (a *Arena) resolveEntityCollisions() {
	margin := a.cfg.Collision.SeparationMargin

	for _, e := range a.mobile {
		pose := a.poseMap.Get(e)
		radius := a.bodyMap.Get(e).Radius
		kind := a.idMap.Get(e).Kind

		for _, o := range a.entities {
			if o == e {
				continue
			}
			other := a.poseMap.Get(o)
			otherRadius := a.bodyMap.Get(o).Radius
			if !systems.Overlapping(*pose, radius, *other, otherRadius) {
				continue
			}

			otherKind := a.idMap.Get(o).Kind
			switch {
			case kind == otherKind:
				systems.SeparateFrom(pose, radius, *other, otherRadius, margin)
				a.collide(e)
				a.collide(o)
				if kind == components.KindRobot {
					a.collector.RecordRobotCollision()
				} else {
					a.collector.RecordLightCollision()
				}
			case kind == components.KindRobot && otherKind == components.KindFood:
				systems.ResetHunger(&a.robotMap.Get(e).Hunger, a.cfg.Robot)
				a.collector.RecordFoodOverlap()
			}
		}
	}
}

// collide flips a mobile entity, opens its arc window and, for robots,
// stages the touch flag for the next velocity update.
func (a *Arena) collide(e ecs.Entity) {
	m := a.motionMap.Get(e)
	systems.BeginArc(a.poseMap.Get(e), m, a.cfg.Motion.ArcTicks)
	if a.idMap.Get(e).Kind == components.KindRobot {
		m.Touch = true
	}
}
